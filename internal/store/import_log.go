package store

import (
	"database/sql"
	"fmt"
)

// ImportLog 导入日志行
type ImportLog struct {
	ID            int64  `json:"id"`
	Filename      string `json:"filename"`
	Session       string `json:"session"`
	Status        string `json:"status"` // processing/completed/failed
	TotalRows     int    `json:"totalRows"`
	ProcessedRows int    `json:"processedRows"`
	SkippedRows   int    `json:"skippedRows"`
	FailedRows    int    `json:"failedRows"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
	StartedAt     string `json:"startedAt"`
	CompletedAt   string `json:"completedAt,omitempty"`
}

// CreateImportLog 创建导入日志，返回 import_log_id
func (s *Store) CreateImportLog(filename, session string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, session, status)
		VALUES (?, ?, 'processing')
	`, filename, session)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// CompleteImportLog 完成导入日志更新
func (s *Store) CompleteImportLog(id int64, totalRows, processedRows, skippedRows, failedRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			total_rows = ?,
			processed_rows = ?,
			skipped_rows = ?,
			failed_rows = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalRows, processedRows, skippedRows, failedRows, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// ListImportLogs 按时间倒序列出最近的导入日志
func (s *Store) ListImportLogs(limit int) ([]*ImportLog, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, filename, session, status,
			total_rows, processed_rows, skipped_rows, failed_rows,
			error_message, started_at, completed_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var logs []*ImportLog
	for rows.Next() {
		l := &ImportLog{}
		var errorMessage, completedAt sql.NullString
		err := rows.Scan(
			&l.ID, &l.Filename, &l.Session, &l.Status,
			&l.TotalRows, &l.ProcessedRows, &l.SkippedRows, &l.FailedRows,
			&errorMessage, &l.StartedAt, &completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import log: %w", err)
		}
		l.ErrorMessage = errorMessage.String
		l.CompletedAt = completedAt.String
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return logs, nil
}
