package driver

// Stage is one step of the per-file translation pipeline.
type Stage uint8

const (
	StageQueued Stage = iota
	StageTokenize
	StageParse
	StageSync
	StageEmit
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageTokenize:
		return "tokenizing"
	case StageParse:
		return "parsing"
	case StageSync:
		return "syncing"
	case StageEmit:
		return "emitting"
	case StageWrite:
		return "writing"
	}
	return "unknown"
}

// Status qualifies a stage event.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
	StatusSkipped
)

// Event is one progress notification from the batch translator.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// notify sends an event when a sink is configured.
func (o *Options) notify(file string, stage Stage, status Status) {
	if o.Events == nil {
		return
	}
	o.Events <- Event{File: file, Stage: stage, Status: status}
}
