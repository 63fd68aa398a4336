package queries

const (
	InsertProduct = `INSERT INTO products (name, price, quantity, available, category_id)
VALUES (?, ?, ?, ?, ?) RETURNING id`

	UpdateProduct = `UPDATE products
SET name = ?, price = ?, quantity = ?, available = ?, category_id = ?
WHERE id = ?`

	GetProductByID = `SELECT p.id, p.name, p.price, p.quantity, p.available,
pc.id AS category_id, pc.name AS category_name, pc.type AS category_type
FROM products p
INNER JOIN product_categories pc ON p.category_id = pc.id
WHERE p.id = ?`

	GetAllProducts = `SELECT p.id, p.name, p.price, p.quantity, p.available,
pc.id AS category_id, pc.name AS category_name, pc.type AS category_type
FROM products p
INNER JOIN product_categories pc ON p.category_id = pc.id
ORDER BY p.id`

	DeleteOrderDetailProductsByProductID = `DELETE FROM order_detail_products WHERE product_id = ?`

	DeleteProduct = `DELETE FROM products WHERE id = ?`
)
