package scheduler

const (
	LogMsgJobScheduled   = "Job scheduled"
	LogMsgSchedulerStart = "Scheduler started"
	LogMsgSchedulerStop  = "Scheduler stopped"
	LogMsgJobDropped     = "Scheduled job dropped, worker queue full"
)

const (
	ErrMsgInvalidSchedule = "invalid schedule"
	ErrMsgDuplicateJob    = "job already scheduled"
)
