package store

import (
	"database/sql"
	"fmt"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// referenceTables 参考数据域到表名的映射
var referenceTables = map[model.ReferenceDomain]string{
	model.DomainCustomer:    "customers",
	model.DomainEntity:      "entities",
	model.DomainEntityGroup: "entities_gr",
	model.DomainDealType:    "deal_types",
	model.DomainVertical:    "verticals",
	model.DomainHorizontal:  "horizontals",
}

// referenceTable 取参考数据域对应的表名
func referenceTable(domain model.ReferenceDomain) (string, error) {
	table, ok := referenceTables[domain]
	if !ok {
		return "", fmt.Errorf("unknown reference domain: %s", domain)
	}
	return table, nil
}

// FindReferenceByName 按名称精确查找参考实体
func (s *Store) FindReferenceByName(q Queryer, domain model.ReferenceDomain, name string) (int64, bool, error) {
	table, err := referenceTable(domain)
	if err != nil {
		return 0, false, err
	}

	var id int64
	err = q.QueryRow("SELECT id FROM "+table+" WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find %s by name: %w", domain, err)
	}
	return id, true, nil
}

// CreateReference 创建参考实体；名称冲突时回查已有行（insert-or-fetch）
func (s *Store) CreateReference(q Queryer, domain model.ReferenceDomain, name string) (int64, error) {
	table, err := referenceTable(domain)
	if err != nil {
		return 0, err
	}

	res, err := q.Exec("INSERT INTO "+table+" (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", domain, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 1 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get %s id: %w", domain, err)
		}
		return id, nil
	}

	// 并发插入撞上唯一约束，回查已有行
	id, found, err := s.FindReferenceByName(q, domain, name)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%s insert conflict but row not found: %s", domain, name)
	}
	return id, nil
}

// ListReferenceOptions 列出参考实体的 (id, name) 选项，按名称排序
func (s *Store) ListReferenceOptions(domain model.ReferenceDomain) ([]model.Reference, error) {
	table, err := referenceTable(domain)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT id, name FROM " + table + " ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", domain, err)
	}
	defer rows.Close()

	var options []model.Reference
	for rows.Next() {
		var r model.Reference
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", domain, err)
		}
		options = append(options, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return options, nil
}

// CountReference 统计参考实体数量
func (s *Store) CountReference(domain model.ReferenceDomain) (int, error) {
	table, err := referenceTable(domain)
	if err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", domain, err)
	}
	return count, nil
}

// FindEmployeeByName 按名称精确查找员工
func (s *Store) FindEmployeeByName(q Queryer, name string) (int64, bool, error) {
	var id int64
	err := q.QueryRow("SELECT id FROM employees WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find employee by name: %w", err)
	}
	return id, true, nil
}

// CreateEmployee 创建员工
func (s *Store) CreateEmployee(q Queryer, name string) (int64, error) {
	res, err := q.Exec("INSERT INTO employees (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get employee id: %w", err)
	}
	return id, nil
}

// CountEmployees 统计员工数量
func (s *Store) CountEmployees() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// ListEmployeeOptions 列出员工 (id, name) 选项
func (s *Store) ListEmployeeOptions() ([]model.Reference, error) {
	rows, err := s.db.Query("SELECT id, name FROM employees ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var options []model.Reference
	for rows.Next() {
		var r model.Reference
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		options = append(options, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return options, nil
}
