package constants

// Журнал аудита действий администратора
const (
	AuditExchangeName = "admin_exchange"
	AuditExchangeType = "topic"

	RoutingKeyAdminActions = "admin.actions"
)

// Тип и версия события, совпадают с ключом схемы в contracts
const (
	AdminActionEventType    = "AdminActionEvent"
	AdminActionEventVersion = "1.0.0"
)
