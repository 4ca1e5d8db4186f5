package models

// Flag персистентный булев маркер клиента
type Flag string

const (
	// FlagServerWasDown выставляется при переходе available -> unavailable
	FlagServerWasDown Flag = "server_was_down"
	// FlagNeedsRefresh требует полного перечитывания данных с сервера
	FlagNeedsRefresh Flag = "needs_refresh"
)
