package model

// Classification 项目地域分类
const (
	ClassificationUS  = "US"
	ClassificationRoW = "RoW"
)

// BusinessType 项目业务类型
const (
	BusinessTypeMS = "MS" // Managed Services：每行新建项目并写入月度收入
	BusinessTypePS = "PS" // Professional Services：复用/新建项目并挂载资源
)

// 客户类型代码，来自 EEENNN 列，仅允许三种取值
const (
	CustomerTypeEE = "EE"
	CustomerTypeEN = "EN"
	CustomerTypeNN = "NN"
)

// Project 项目，导入管线的核心单元
type Project struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Classification string `json:"classification"` // US / RoW
	BusinessType   string `json:"businessType"`   // MS / PS
	CustomerType   string `json:"customerType"`   // EE / EN / NN

	CustomerID    int64 `json:"customerId"`
	EntityID      int64 `json:"entityId"` // 0 表示未关联
	EntityGroupID int64 `json:"entityGroupId"`
	DealTypeID    int64 `json:"dealTypeId"`
	VerticalID    int64 `json:"verticalId"`   // 0 表示未关联
	HorizontalID  int64 `json:"horizontalId"` // 0 表示未关联

	// 员工角色，均可为空（TBH 时为空）
	PracticeHeadID int64 `json:"practiceHeadId"`
	BDMID          int64 `json:"bdmId"`
	GeoHeadID      int64 `json:"geoHeadId"`
	BUHeadID       int64 `json:"buHeadId"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Remarks   string `json:"remarks"`
}

// Resource 项目上的人力资源（仅 PS 流程）
type Resource struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	EmployeeCode string  `json:"employeeCode"`
	BillRate     float64 `json:"billRate"`
	ProjectID    int64   `json:"projectId"`
}

// Revenue 月度收入事实行，键为 (projectId, financialYear, financialMonth)
// financialMonth 为财年月份：1 = 四月 ... 12 = 次年三月
type Revenue struct {
	ID             int64   `json:"id"`
	ProjectID      int64   `json:"projectId"`
	FinancialYear  string  `json:"financialYear"` // 例如 "2025-26"
	FinancialMonth int     `json:"financialMonth"`
	Forecast       float64 `json:"forecast"`
	Actual         float64 `json:"actual"`
	Budget         float64 `json:"budget"`
}
