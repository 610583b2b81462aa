package store

import (
	"database/sql"
	"fmt"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// FindResourceByName 按名称查找资源
func (s *Store) FindResourceByName(q Queryer, name string) (*model.Resource, bool, error) {
	return s.scanResource(q.QueryRow(
		"SELECT id, name, employee_code, bill_rate, project_id FROM resources WHERE name = ? ORDER BY id LIMIT 1",
		name))
}

// FindResourceByCode 按员工编码查找资源
func (s *Store) FindResourceByCode(q Queryer, code string) (*model.Resource, bool, error) {
	return s.scanResource(q.QueryRow(
		"SELECT id, name, employee_code, bill_rate, project_id FROM resources WHERE employee_code = ? ORDER BY id LIMIT 1",
		code))
}

// InsertResource 插入资源
func (s *Store) InsertResource(q Queryer, r *model.Resource) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO resources (name, employee_code, bill_rate, project_id)
		VALUES (?, ?, ?, ?)
	`, r.Name, r.EmployeeCode, r.BillRate, r.ProjectID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert resource: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get resource id: %w", err)
	}
	return id, nil
}

// RepointResource 将资源改挂到另一个项目（显式移动而非复制）
func (s *Store) RepointResource(q Queryer, resourceID, projectID int64) error {
	_, err := q.Exec("UPDATE resources SET project_id = ? WHERE id = ?", projectID, resourceID)
	if err != nil {
		return fmt.Errorf("failed to repoint resource: %w", err)
	}
	return nil
}

// CountResources 统计资源数量
func (s *Store) CountResources() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM resources").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count resources: %w", err)
	}
	return count, nil
}

// scanResource 扫描单行资源
func (s *Store) scanResource(row *sql.Row) (*model.Resource, bool, error) {
	r := &model.Resource{}
	err := row.Scan(&r.ID, &r.Name, &r.EmployeeCode, &r.BillRate, &r.ProjectID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to scan resource: %w", err)
	}
	return r, true, nil
}
