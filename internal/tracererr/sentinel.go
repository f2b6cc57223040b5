package tracererr

// Initialization errors.
var (
	// ErrKernelObjectMissing indicates the embedded eBPF object could not be loaded.
	ErrKernelObjectMissing = &TraceError{Kind: ErrLoad, Detail: "kernel object could not be loaded"}

	// ErrProgramNotFound indicates a named program is absent from the kernel object.
	ErrProgramNotFound = &TraceError{Kind: ErrLoad, Detail: "program not found in kernel object"}

	// ErrMapNotFound indicates a named map is absent from the kernel object.
	ErrMapNotFound = &TraceError{Kind: ErrLoad, Detail: "map not found in kernel object"}
)

// Admission errors.
var (
	// ErrEmptyCommand indicates an empty command argv was given.
	ErrEmptyCommand = &TraceError{Kind: ErrAdmission, Detail: "command is empty"}

	// ErrNoTarget indicates neither --pid nor a command after -- was supplied.
	ErrNoTarget = &TraceError{Kind: ErrAdmission, Detail: "exactly one of --pid or a command after -- must be supplied"}

	// ErrBothTargets indicates both --pid and a command after -- were supplied.
	ErrBothTargets = &TraceError{Kind: ErrAdmission, Detail: "only one of --pid or a command after -- may be supplied"}
)

// Decode errors.
var (
	// ErrRecordSize indicates a ring-buffer record was not exactly 32 bytes.
	ErrRecordSize = &TraceError{Kind: ErrDecode, Detail: "record is not 32 bytes"}

	// ErrRecordAlignment indicates a ring-buffer record was not 8-byte aligned.
	ErrRecordAlignment = &TraceError{Kind: ErrDecode, Detail: "record is not 8-byte aligned"}

	// ErrInvalidTag indicates a record's state tag was neither AtEnter nor AtExit.
	ErrInvalidTag = &TraceError{Kind: ErrDecode, Detail: "state tag is not 0 or 1"}
)

// Delivery / cancellation errors.
var (
	// ErrBusClosed indicates the event bus was dropped.
	ErrBusClosed = &TraceError{Kind: ErrDelivery, Detail: "event bus closed"}

	// ErrInterruptedSignal is returned by the drainer when the shared
	// interrupt flag is observed set; the supervisor treats it as a
	// normal termination, not a fault.
	ErrInterruptedSignal = &TraceError{Kind: ErrInterrupted, Detail: "interrupted"}
)
