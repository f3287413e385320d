package request

type TargetRequest struct {
	Target string `form:"target" binding:"required,max=512"`
	From   string `form:"from" binding:"omitempty,max=64"`
	Until  string `form:"until" binding:"omitempty,max=64"`
}
