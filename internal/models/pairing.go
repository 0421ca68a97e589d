package models

// Pairing — данные для подключения клиента: адрес панели и его QR построчно.
type Pairing struct {
	URL string   `json:"url"`
	QR  []string `json:"qr"`
}
