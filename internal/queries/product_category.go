package queries

const (
	GetCategoryByID = `SELECT pc.id AS category_id, pc.name AS category_name, pc.type AS category_type
FROM product_categories pc
WHERE pc.id = ?`

	GetAllCategories = `SELECT pc.id AS category_id, pc.name AS category_name, pc.type AS category_type
FROM product_categories pc
ORDER BY pc.id`

	GetProductsByCategoryID = `SELECT p.id, p.name, p.price, p.quantity, p.available
FROM products p
WHERE p.category_id = ?
ORDER BY p.id`

	InsertCategory = `INSERT INTO product_categories (name, type) VALUES (?, ?) RETURNING id`

	UpdateCategory = `UPDATE product_categories SET name = ?, type = ? WHERE id = ?`

	DeleteOrderDetailProductsByCategoryID = `DELETE FROM order_detail_products
WHERE product_id IN (SELECT id FROM products WHERE category_id = ?)`

	DeleteProductsByCategoryID = `DELETE FROM products WHERE category_id = ?`

	DeleteCategory = `DELETE FROM product_categories WHERE id = ?`
)
