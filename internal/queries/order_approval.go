package queries

const (
	InsertApproval = `INSERT INTO order_approvals (order_detail_id) VALUES (?) RETURNING id`

	GetApprovalByID = `SELECT oa.id, oa.order_detail_id, od.total_amount, os.id AS status_id, os.status_name
FROM order_approvals oa
INNER JOIN order_details od ON oa.order_detail_id = od.id
INNER JOIN order_status os ON od.order_status_id = os.id
WHERE oa.id = ?`

	GetAllApprovals = `SELECT oa.id, oa.order_detail_id, od.total_amount, os.id AS status_id, os.status_name
FROM order_approvals oa
INNER JOIN order_details od ON oa.order_detail_id = od.id
INNER JOIN order_status os ON od.order_status_id = os.id
ORDER BY oa.id`

	GetApprovalIDByOrderDetailID = `SELECT id FROM order_approvals WHERE order_detail_id = ?`

	UpdateApproval = `UPDATE order_approvals SET order_detail_id = ? WHERE id = ?`

	DeleteApproval = `DELETE FROM order_approvals WHERE id = ?`
)
