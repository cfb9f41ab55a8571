package usercode

// Shell sizing shared by the front-ends.
const (
	Prompt          = ">> "
	InputMaxLen     = 128
	HistoryCapacity = 256
)
