package smoke

// HTTP status code constants.
const (
	StatusOK         = 200
	StatusBadRequest = 400
	StatusNotFound   = 404
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Reporting constants.
const (
	PercentageMultiplier = 100
)
