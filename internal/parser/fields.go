package parser

// 逻辑字段名：操作员在上传前将每个逻辑字段映射到一个列字母
const (
	FieldMSPS         = "MS/PS"         // 行类型判别字段，必须首先映射
	FieldEntity       = "Entity"        // 法务实体（可选）
	FieldGREntity     = "GR Entity"     // 实体集团（必填）
	FieldRowUS        = "ROW/US"        // 地域分类
	FieldResourceID   = "Resource ID"   // 资源员工编码
	FieldResourceName = "Resource Name" // 资源姓名
	FieldDealType     = "Deal Type"     // 交易类型（必填）
	FieldEEENNN       = "EEENNN"        // 客户类型代码 EE/EN/NN
	FieldBillRate     = "Bill Rate"     // 费率
	FieldStartDate    = "Start Date"
	FieldEndDate      = "End Date"
	FieldFY           = "FY" // 财年标签
	FieldCustomerName = "Customer Name"
	FieldProjectName  = "Project Name"
	FieldPracticeHead = "Practice Head"
	FieldBDM          = "BDM"
	FieldGeoHead      = "GeoHead"
	FieldBUHead       = "BU Head"
	FieldVertical     = "Vertical"
	FieldHorizontal   = "Horizontal"
	FieldRemarks      = "Remarks"
)

// FiscalMonthFields 十二个财年月份列，索引 0 对应财年月份 1（四月）
var FiscalMonthFields = [12]string{
	"Apr", "May", "Jun", "Jul", "Aug", "Sep",
	"Oct", "Nov", "Dec", "Jan", "Feb", "Mar",
}

// DataStartRow 数据起始行（第 1 行为表头块，永不处理）
const DataStartRow = 2
