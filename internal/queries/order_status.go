package queries

const (
	InsertOrderStatus = `INSERT INTO order_status (id, status_name) VALUES (?, ?)`

	GetOrderStatusByID = `SELECT id, status_name FROM order_status WHERE id = ?`

	GetAllOrderStatuses = `SELECT id, status_name FROM order_status ORDER BY id`

	DeleteOrderStatus = `DELETE FROM order_status WHERE id = ?`
)
