package store

import (
	"fmt"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
)

// UpsertRevenueForecast 写入月度预测收入
// 键 (project_id, financial_year, financial_month) 已存在时原地更新 forecast，
// 不存在时插入新行（actual/budget 保持默认 0）
func (s *Store) UpsertRevenueForecast(q Queryer, projectID int64, financialYear string, financialMonth int, forecast float64) error {
	_, err := q.Exec(`
		INSERT INTO revenue (project_id, financial_year, financial_month, forecast)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(project_id, financial_year, financial_month)
		DO UPDATE SET forecast = excluded.forecast
	`, projectID, financialYear, financialMonth, forecast)
	if err != nil {
		return fmt.Errorf("failed to upsert revenue: %w", err)
	}
	return nil
}

// GetRevenueByProject 获取项目在指定财年的收入行，按财年月份排序
func (s *Store) GetRevenueByProject(projectID int64, financialYear string) ([]*model.Revenue, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, financial_year, financial_month, forecast, actual, budget
		FROM revenue
		WHERE project_id = ? AND financial_year = ?
		ORDER BY financial_month
	`, projectID, financialYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue: %w", err)
	}
	defer rows.Close()

	var results []*model.Revenue
	for rows.Next() {
		r := &model.Revenue{}
		err := rows.Scan(&r.ID, &r.ProjectID, &r.FinancialYear, &r.FinancialMonth,
			&r.Forecast, &r.Actual, &r.Budget)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return results, nil
}

// CountRevenue 统计指定财年的收入行数
func (s *Store) CountRevenue(financialYear string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM revenue WHERE financial_year = ?", financialYear).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count revenue: %w", err)
	}
	return count, nil
}
