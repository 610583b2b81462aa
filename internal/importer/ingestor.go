package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadanand-mindteck/revenye-max/internal/model"
	"github.com/sadanand-mindteck/revenye-max/internal/parser"
	"github.com/sadanand-mindteck/revenye-max/internal/store"
)

// Ingestor 行分类与写入器
// 按表顺序逐行处理：MS 行新建项目并写月度收入，PS 行复用/新建项目并挂载资源
// 每行的 resolve+write 序列跑在一个事务里；单行失败只放弃该行，批次继续
type Ingestor struct {
	store *store.Store
}

// NewIngestor 创建导入器
func NewIngestor(st *store.Store) *Ingestor {
	return &Ingestor{store: st}
}

// Run 执行一次上传的导入，返回导入报告
// 仅工作簿级解码失败是致命的（发生在进入这里之前）；行级问题全部吞掉进报告
func (ing *Ingestor) Run(wb *parser.Workbook, mapping parser.ColumnMapping, session string) *model.IngestReport {
	startTime := time.Now()

	report := &model.IngestReport{
		Session:  session,
		Outcomes: make(map[model.RowOutcome]int),
	}

	resolver := NewResolver(ing.store)

	for rowNo := parser.DataStartRow; rowNo <= wb.RowCount(); rowNo++ {
		report.TotalRows++

		// 判别字段和两个名称字段全空的行视为空行，直接略过
		if mapping.TextAt(wb, rowNo, parser.FieldMSPS) == "" &&
			mapping.TextAt(wb, rowNo, parser.FieldCustomerName) == "" &&
			mapping.TextAt(wb, rowNo, parser.FieldProjectName) == "" {
			continue
		}

		result := ing.processRow(resolver, wb, mapping, session, rowNo)
		recordRow(report, result)
	}

	report.Duration = time.Since(startTime)
	return report
}

// processRow 处理单行
// 行内任何提前退出都只作用于本行：本函数返回行结果，外层循环决定继续
func (ing *Ingestor) processRow(resolver *Resolver, wb *parser.Workbook, mapping parser.ColumnMapping, session string, rowNo int) model.RowResult {
	result := model.RowResult{RowNo: rowNo}

	rowType := strings.ToUpper(mapping.TextAt(wb, rowNo, parser.FieldMSPS))
	if rowType != model.BusinessTypeMS && rowType != model.BusinessTypePS {
		result.Skipped = true
		result.Reason = model.SkipUnknownRowType
		return result
	}

	tx, err := ing.store.BeginTx()
	if err != nil {
		result.Reason = fmt.Sprintf("begin transaction: %v", err)
		return result
	}

	rr := resolver.Begin(tx)

	var outcomes []model.RowOutcome
	var skip string
	if rowType == model.BusinessTypeMS {
		outcomes, skip, err = ing.processMSRow(tx, rr, wb, mapping, session, rowNo)
	} else {
		outcomes, skip, err = ing.processPSRow(tx, rr, wb, mapping, rowNo)
	}

	if err != nil {
		tx.Rollback()
		rr.Discard()
		result.Reason = err.Error()
		return result
	}
	if skip != "" {
		tx.Rollback()
		rr.Discard()
		result.Skipped = true
		result.Reason = skip
		return result
	}
	if err := tx.Commit(); err != nil {
		rr.Discard()
		result.Reason = fmt.Sprintf("commit: %v", err)
		return result
	}

	rr.Commit()
	result.Outcomes = outcomes
	return result
}

// rowRefs 一行解析完成的全部引用与派生字段
type rowRefs struct {
	customerName string
	projectName  string

	customerID    int64
	entityID      int64
	entityGroupID int64
	dealTypeID    int64
	verticalID    int64
	horizontalID  int64

	practiceHeadID int64
	bdmID          int64
	geoHeadID      int64
	buHeadID       int64

	classification string
	customerType   string
}

// resolveRowRefs 解析一行的全部引用字段，MS/PS 共用同一条路径
// 返回 skip 原因时该行跳过；返回 error 时该行失败
func (ing *Ingestor) resolveRowRefs(rr *RowResolver, wb *parser.Workbook, mapping parser.ColumnMapping, rowNo int) (*rowRefs, string, error) {
	customerName := mapping.TextAt(wb, rowNo, parser.FieldCustomerName)
	if customerName == "" {
		return nil, model.SkipMissingCustomerName, nil
	}
	projectName := mapping.TextAt(wb, rowNo, parser.FieldProjectName)
	if projectName == "" {
		return nil, model.SkipMissingProjectName, nil
	}

	refs := &rowRefs{
		customerName: customerName,
		projectName:  projectName,
	}

	// 固定顺序解析：Customer → Entity → Entity-Group → Deal Type → 员工角色 → Vertical → Horizontal
	var err error
	if refs.customerID, err = rr.ResolveReference(model.DomainCustomer, customerName); err != nil {
		return nil, "", err
	}
	if refs.entityID, err = rr.ResolveReference(model.DomainEntity, mapping.TextAt(wb, rowNo, parser.FieldEntity)); err != nil {
		return nil, "", err
	}

	// Entity-Group 与 Deal Type 必填且不做自动创建，解析失败只跳过本行
	id, found, err := rr.LookupReference(model.DomainEntityGroup, mapping.TextAt(wb, rowNo, parser.FieldGREntity))
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, model.SkipUnknownEntityGroup, nil
	}
	refs.entityGroupID = id

	id, found, err = rr.LookupReference(model.DomainDealType, mapping.TextAt(wb, rowNo, parser.FieldDealType))
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, model.SkipUnknownDealType, nil
	}
	refs.dealTypeID = id

	if refs.practiceHeadID, err = rr.ResolveEmployee(mapping.TextAt(wb, rowNo, parser.FieldPracticeHead)); err != nil {
		return nil, "", err
	}
	if refs.bdmID, err = rr.ResolveEmployee(mapping.TextAt(wb, rowNo, parser.FieldBDM)); err != nil {
		return nil, "", err
	}
	if refs.geoHeadID, err = rr.ResolveEmployee(mapping.TextAt(wb, rowNo, parser.FieldGeoHead)); err != nil {
		return nil, "", err
	}
	if refs.buHeadID, err = rr.ResolveEmployee(mapping.TextAt(wb, rowNo, parser.FieldBUHead)); err != nil {
		return nil, "", err
	}

	if refs.verticalID, err = rr.ResolveReference(model.DomainVertical, mapping.TextAt(wb, rowNo, parser.FieldVertical)); err != nil {
		return nil, "", err
	}
	if refs.horizontalID, err = rr.ResolveReference(model.DomainHorizontal, mapping.TextAt(wb, rowNo, parser.FieldHorizontal)); err != nil {
		return nil, "", err
	}

	// 地域分类：ROW/US 列大写为 US 时取 US，其余一律 RoW
	if strings.ToUpper(mapping.TextAt(wb, rowNo, parser.FieldRowUS)) == model.ClassificationUS {
		refs.classification = model.ClassificationUS
	} else {
		refs.classification = model.ClassificationRoW
	}

	// 客户类型代码必须是三个已知值之一
	customerType := strings.ToUpper(mapping.TextAt(wb, rowNo, parser.FieldEEENNN))
	switch customerType {
	case model.CustomerTypeEE, model.CustomerTypeEN, model.CustomerTypeNN:
		refs.customerType = customerType
	default:
		return nil, model.SkipInvalidCustomerType, nil
	}

	return refs, "", nil
}

// buildProject 由解析结果组装项目记录
func buildProject(refs *rowRefs, name, businessType string, wb *parser.Workbook, mapping parser.ColumnMapping, rowNo int) *model.Project {
	return &model.Project{
		Name:           name,
		Classification: refs.classification,
		BusinessType:   businessType,
		CustomerType:   refs.customerType,
		CustomerID:     refs.customerID,
		EntityID:       refs.entityID,
		EntityGroupID:  refs.entityGroupID,
		DealTypeID:     refs.dealTypeID,
		VerticalID:     refs.verticalID,
		HorizontalID:   refs.horizontalID,
		PracticeHeadID: refs.practiceHeadID,
		BDMID:          refs.bdmID,
		GeoHeadID:      refs.geoHeadID,
		BUHeadID:       refs.buHeadID,
		StartDate:      mapping.TextAt(wb, rowNo, parser.FieldStartDate),
		EndDate:        mapping.TextAt(wb, rowNo, parser.FieldEndDate),
		Remarks:        mapping.TextAt(wb, rowNo, parser.FieldRemarks),
	}
}

// processMSRow 处理 MS 行：无条件新建项目，按财年月份列写入收入
func (ing *Ingestor) processMSRow(tx store.Queryer, rr *RowResolver, wb *parser.Workbook, mapping parser.ColumnMapping, session string, rowNo int) ([]model.RowOutcome, string, error) {
	refs, skip, err := ing.resolveRowRefs(rr, wb, mapping, rowNo)
	if err != nil || skip != "" {
		return nil, skip, err
	}

	// 财年：行内 FY 列优先，否则取上传的 session 标签
	financialYear := mapping.TextAt(wb, rowNo, parser.FieldFY)
	if financialYear == "" {
		financialYear = session
	}
	if financialYear == "" {
		return nil, model.SkipMissingFinancialYear, nil
	}

	// MS 行不查重名：每一行都是自己的项目
	projectID, err := ing.store.InsertProject(tx, buildProject(refs, refs.projectName, model.BusinessTypeMS, wb, mapping, rowNo))
	if err != nil {
		return nil, "", err
	}

	outcomes := []model.RowOutcome{model.OutcomeCreatedProject}

	// 十二个财年月份列（四月…三月），只写解析出数值的月份
	revenueWritten := false
	for i, field := range parser.FiscalMonthFields {
		amount := mapping.NumberAt(wb, rowNo, field)
		if amount == nil {
			continue
		}
		if err := ing.store.UpsertRevenueForecast(tx, projectID, financialYear, i+1, *amount); err != nil {
			return nil, "", err
		}
		revenueWritten = true
	}
	if revenueWritten {
		outcomes = append(outcomes, model.OutcomeRevenueWritten)
	}

	return outcomes, "", nil
}

// processPSRow 处理 PS 行：复用或新建项目，然后挂载资源
// PS 行描述人员配置，不直接写收入事实
func (ing *Ingestor) processPSRow(tx store.Queryer, rr *RowResolver, wb *parser.Workbook, mapping parser.ColumnMapping, rowNo int) ([]model.RowOutcome, string, error) {
	refs, skip, err := ing.resolveRowRefs(rr, wb, mapping, rowNo)
	if err != nil || skip != "" {
		return nil, skip, err
	}

	resourceName := mapping.TextAt(wb, rowNo, parser.FieldResourceName)
	if resourceName == "" {
		return nil, model.SkipMissingResourceName, nil
	}

	var outcomes []model.RowOutcome

	// 项目名不带 "new" 标记时先按名复用已有项目
	projectNew := parser.HasNewMarker(refs.projectName)
	var projectID int64
	if !projectNew {
		id, found, err := ing.store.FindProjectByName(tx, refs.projectName)
		if err != nil {
			return nil, "", err
		}
		if found {
			projectID = id
			outcomes = append(outcomes, model.OutcomeReusedProject)
		}
	}
	if projectID == 0 {
		name := refs.projectName
		if projectNew {
			name = suffixed(name)
		}
		projectID, err = ing.store.InsertProject(tx, buildProject(refs, name, model.BusinessTypePS, wb, mapping, rowNo))
		if err != nil {
			return nil, "", err
		}
		outcomes = append(outcomes, model.OutcomeCreatedProject)
	}

	if err := ing.attachResource(tx, projectID, resourceName, wb, mapping, rowNo); err != nil {
		return nil, "", err
	}
	outcomes = append(outcomes, model.OutcomeResourceLinked)

	return outcomes, "", nil
}

// attachResource 解析并挂载资源：先按名查找，再按编码查找；
// 挂在别的项目下时改挂到当前项目，查无则新建
func (ing *Ingestor) attachResource(tx store.Queryer, projectID int64, resourceName string, wb *parser.Workbook, mapping parser.ColumnMapping, rowNo int) error {
	resourceNew := parser.HasNewMarker(resourceName)

	finalName := resourceName
	if resourceNew {
		finalName = suffixed(resourceName)
	}

	// 源编码为空时自动生成
	finalCode := mapping.TextAt(wb, rowNo, parser.FieldResourceID)
	if finalCode == "" {
		finalCode = generatedResourceCode()
	} else if resourceNew {
		finalCode = suffixed(finalCode)
	}

	resource, found, err := ing.store.FindResourceByName(tx, finalName)
	if err != nil {
		return err
	}
	if !found {
		resource, found, err = ing.store.FindResourceByCode(tx, finalCode)
		if err != nil {
			return err
		}
	}

	if found {
		if resource.ProjectID != projectID {
			return ing.store.RepointResource(tx, resource.ID, projectID)
		}
		return nil
	}

	billRate := 0.0
	if rate := mapping.NumberAt(wb, rowNo, parser.FieldBillRate); rate != nil {
		billRate = *rate
	}

	_, err = ing.store.InsertResource(tx, &model.Resource{
		Name:         finalName,
		EmployeeCode: finalCode,
		BillRate:     billRate,
		ProjectID:    projectID,
	})
	return err
}
