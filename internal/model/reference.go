package model

// ReferenceDomain 参考数据域
type ReferenceDomain string

const (
	DomainCustomer    ReferenceDomain = "customer"     // 客户
	DomainEntity      ReferenceDomain = "entity"       // 法务实体
	DomainEntityGroup ReferenceDomain = "entity_group" // 实体集团
	DomainDealType    ReferenceDomain = "deal_type"    // 交易类型
	DomainEmployee    ReferenceDomain = "employee"     // 员工
	DomainVertical    ReferenceDomain = "vertical"     // 行业垂直
	DomainHorizontal  ReferenceDomain = "horizontal"   // 能力横向
)

// Reference 基础参考实体 (id, name)
type Reference struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Employee 员工，可在项目上担任多种角色
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employeeCode"`
}

// EmployeeRole 项目上的员工角色
type EmployeeRole string

const (
	RolePracticeHead EmployeeRole = "practice_head" // 业务线负责人
	RoleBDM          EmployeeRole = "bdm"           // 商务拓展经理
	RoleGeoHead      EmployeeRole = "geo_head"      // 区域负责人
	RoleBUHead       EmployeeRole = "bu_head"       // 事业部负责人
)
