package store

import (
	"database/sql"
	"fmt"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// nullableID 0 视为 NULL 的外键
func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

// InsertProject 插入项目，返回新项目 id
func (s *Store) InsertProject(q Queryer, p *model.Project) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO projects (
			name, classification, business_type, customer_type,
			customer_id, entity_id, entity_gr_id, deal_type_id,
			vertical_id, horizontal_id,
			practice_head_id, bdm_id, geo_head_id, bu_head_id,
			start_date, end_date, remarks
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Name, p.Classification, p.BusinessType, p.CustomerType,
		p.CustomerID, nullableID(p.EntityID), p.EntityGroupID, p.DealTypeID,
		nullableID(p.VerticalID), nullableID(p.HorizontalID),
		nullableID(p.PracticeHeadID), nullableID(p.BDMID),
		nullableID(p.GeoHeadID), nullableID(p.BUHeadID),
		p.StartDate, p.EndDate, p.Remarks,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get project id: %w", err)
	}
	return id, nil
}

// FindProjectByName 按名称精确查找项目（PS 行复用判断）
func (s *Store) FindProjectByName(q Queryer, name string) (int64, bool, error) {
	var id int64
	err := q.QueryRow("SELECT id FROM projects WHERE name = ? ORDER BY id LIMIT 1", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find project by name: %w", err)
	}
	return id, true, nil
}

// GetProjectByID 按 id 获取项目
func (s *Store) GetProjectByID(id int64) (*model.Project, error) {
	p := &model.Project{}
	var entityID, verticalID, horizontalID sql.NullInt64
	var practiceHeadID, bdmID, geoHeadID, buHeadID sql.NullInt64
	var startDate, endDate, remarks sql.NullString

	err := s.db.QueryRow(`
		SELECT id, name, classification, business_type, customer_type,
			customer_id, entity_id, entity_gr_id, deal_type_id,
			vertical_id, horizontal_id,
			practice_head_id, bdm_id, geo_head_id, bu_head_id,
			start_date, end_date, remarks
		FROM projects WHERE id = ?
	`, id).Scan(
		&p.ID, &p.Name, &p.Classification, &p.BusinessType, &p.CustomerType,
		&p.CustomerID, &entityID, &p.EntityGroupID, &p.DealTypeID,
		&verticalID, &horizontalID,
		&practiceHeadID, &bdmID, &geoHeadID, &buHeadID,
		&startDate, &endDate, &remarks,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found: %d", id)
		}
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}

	p.EntityID = entityID.Int64
	p.VerticalID = verticalID.Int64
	p.HorizontalID = horizontalID.Int64
	p.PracticeHeadID = practiceHeadID.Int64
	p.BDMID = bdmID.Int64
	p.GeoHeadID = geoHeadID.Int64
	p.BUHeadID = buHeadID.Int64
	p.StartDate = startDate.String
	p.EndDate = endDate.String
	p.Remarks = remarks.String
	return p, nil
}

// CountProjects 统计项目数量
func (s *Store) CountProjects() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}
