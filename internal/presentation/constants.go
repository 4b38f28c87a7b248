package presentation

const (
	IDParam       = "id"
	MasterIDParam = "master_id"
	SlotParam     = "slot"
	TypeKey       = "Content-Type"
	ReasonTag     = "X-Reason"
)
