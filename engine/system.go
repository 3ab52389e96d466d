package engine

// System is one pass of the tick
// Systems run in ascending Priority order, Init runs on stage entry and every reset
type System interface {
	Init()
	Name() string
	Priority() int
	Update()
}
