package queries

const (
	InsertOrderDetail = `INSERT INTO order_details (order_status_id, total_amount) VALUES (?, ?) RETURNING id`

	GetAllOrderDetails = `SELECT od.id, od.total_amount, os.id AS status_id, os.status_name
FROM order_details od
INNER JOIN order_status os ON od.order_status_id = os.id
ORDER BY od.id`

	GetOrderDetailByID = `SELECT od.id, od.total_amount, os.id AS status_id, os.status_name
FROM order_details od
INNER JOIN order_status os ON od.order_status_id = os.id
WHERE od.id = ?`

	GetProductsByOrderDetailID = `SELECT p.id, p.name, p.price, p.quantity, p.available,
pc.id AS category_id, pc.name AS category_name, pc.type AS category_type
FROM products p
INNER JOIN product_categories pc ON p.category_id = pc.id
INNER JOIN order_detail_products odp ON p.id = odp.product_id
WHERE odp.order_detail_id = ?
ORDER BY p.id`

	UpdateOrderDetail = `UPDATE order_details SET order_status_id = ?, total_amount = ? WHERE id = ?`

	InsertOrderDetailProduct = `INSERT INTO order_detail_products (order_detail_id, product_id) VALUES (?, ?)`

	DeleteOrderDetailProductsByOrderID = `DELETE FROM order_detail_products WHERE order_detail_id = ?`

	DeleteApprovalsByOrderID = `DELETE FROM order_approvals WHERE order_detail_id = ?`

	DeleteOrderDetail = `DELETE FROM order_details WHERE id = ?`
)
