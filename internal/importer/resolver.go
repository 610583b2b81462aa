package importer

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sadanand-mindteck/revenye-max/internal/model"
	"github.com/sadanand-mindteck/revenye-max/internal/parser"
	"github.com/sadanand-mindteck/revenye-max/internal/store"
)

// Resolver 参考数据解析器
// 持有上传级缓存：name → id，按域分段，首次解析时填充，单次上传内不失效
// 同一上传内源数据视为稳定，缓存消除了逐行逐字段的重复查询
type Resolver struct {
	store *store.Store
	cache map[model.ReferenceDomain]map[string]int64
}

// NewResolver 创建解析器
func NewResolver(st *store.Store) *Resolver {
	return &Resolver{
		store: st,
		cache: make(map[model.ReferenceDomain]map[string]int64),
	}
}

// Begin 开启一个行作用域：行内新建的引用先进 pending，
// 行事务提交后并入上传级缓存，回滚则整体丢弃
func (r *Resolver) Begin(q store.Queryer) *RowResolver {
	return &RowResolver{
		resolver: r,
		q:        q,
		pending:  make(map[model.ReferenceDomain]map[string]int64),
	}
}

// RowResolver 单行作用域的解析器
type RowResolver struct {
	resolver *Resolver
	q        store.Queryer
	pending  map[model.ReferenceDomain]map[string]int64
}

// ResolveReference 解析可自动创建的参考域（Customer/Entity/Vertical/Horizontal）
// 空文本 → 0（该字段为空）；带 "new" 标记 → 无条件新建带随机后缀的行；
// 否则 查缓存 → 查库 → 原名新建
func (rr *RowResolver) ResolveReference(domain model.ReferenceDomain, text string) (int64, error) {
	name := parser.ToText(text)
	if name == "" {
		return 0, nil
	}

	// "new" 标记：总是新建，后缀保证多次 "XYZ New" 不塌缩成一行，不进缓存
	if parser.HasNewMarker(name) {
		id, err := rr.resolver.store.CreateReference(rr.q, domain, suffixed(name))
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	if id, ok := rr.lookupCached(domain, name); ok {
		return id, nil
	}

	id, found, err := rr.resolver.store.FindReferenceByName(rr.q, domain, name)
	if err != nil {
		return 0, err
	}
	if !found {
		id, err = rr.resolver.store.CreateReference(rr.q, domain, name)
		if err != nil {
			return 0, err
		}
	}

	rr.remember(domain, name, id)
	return id, nil
}

// LookupReference 解析不做自动创建的必填域（Deal Type/Entity-Group）
// 空文本或查无此名 → found=false，由调用方跳过该行
func (rr *RowResolver) LookupReference(domain model.ReferenceDomain, text string) (int64, bool, error) {
	name := parser.ToText(text)
	if name == "" {
		return 0, false, nil
	}

	if id, ok := rr.lookupCached(domain, name); ok {
		return id, true, nil
	}

	id, found, err := rr.resolver.store.FindReferenceByName(rr.q, domain, name)
	if err != nil || !found {
		return 0, found, err
	}

	rr.remember(domain, name, id)
	return id, true, nil
}

// ResolveEmployee 解析员工角色字段
// TBH 哨兵表示角色有意空缺 → 0，不查库也不建行；其余按名称解析，查无则新建
func (rr *RowResolver) ResolveEmployee(text string) (int64, error) {
	name := parser.ToText(text)
	if name == "" {
		return 0, nil
	}
	if parser.IsToBeHired(name) {
		return 0, nil
	}

	if parser.HasNewMarker(name) {
		id, err := rr.resolver.store.CreateEmployee(rr.q, suffixed(name))
		if err != nil {
			return 0, err
		}
		return id, nil
	}

	if id, ok := rr.lookupCached(model.DomainEmployee, name); ok {
		return id, nil
	}

	id, found, err := rr.resolver.store.FindEmployeeByName(rr.q, name)
	if err != nil {
		return 0, err
	}
	if !found {
		id, err = rr.resolver.store.CreateEmployee(rr.q, name)
		if err != nil {
			return 0, err
		}
	}

	rr.remember(model.DomainEmployee, name, id)
	return id, nil
}

// Commit 行事务已提交，把 pending 条目并入上传级缓存
func (rr *RowResolver) Commit() {
	for domain, entries := range rr.pending {
		cached := rr.resolver.cache[domain]
		if cached == nil {
			cached = make(map[string]int64)
			rr.resolver.cache[domain] = cached
		}
		for name, id := range entries {
			cached[name] = id
		}
	}
	rr.pending = make(map[model.ReferenceDomain]map[string]int64)
}

// Discard 行事务已回滚，丢弃 pending 条目
func (rr *RowResolver) Discard() {
	rr.pending = make(map[model.ReferenceDomain]map[string]int64)
}

// lookupCached 依次查上传级缓存和本行 pending
func (rr *RowResolver) lookupCached(domain model.ReferenceDomain, name string) (int64, bool) {
	if id, ok := rr.resolver.cache[domain][name]; ok {
		return id, true
	}
	if id, ok := rr.pending[domain][name]; ok {
		return id, true
	}
	return 0, false
}

// remember 记入本行 pending
func (rr *RowResolver) remember(domain model.ReferenceDomain, name string, id int64) {
	entries := rr.pending[domain]
	if entries == nil {
		entries = make(map[string]int64)
		rr.pending[domain] = entries
	}
	entries[name] = id
}

// suffixed 生成带短随机后缀的存储名，避免不同上传的 "XYZ New" 撞名
func suffixed(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.New().String()[:8])
}

// generatedResourceCode 为未填编码的资源生成编码
func generatedResourceCode() string {
	return fmt.Sprintf("RES-%s", uuid.New().String()[:8])
}
