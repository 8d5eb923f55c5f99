// Package resolve maps arbitrary raw column names onto the canonical schema
// using an ordered alias table.
package resolve

import (
	"strings"

	"github.com/ecomtop/topsel/internal/schema"
)

// AliasEntry pairs a canonical field with its known source column names.
// Table order is resolution priority and is part of the contract: earlier
// entries claim columns first, and ties between raw columns break on their
// original column order.
type AliasEntry struct {
	Field   schema.Field `yaml:"field"`
	Aliases []string     `yaml:"names"`
}

// DefaultAliases returns the built-in alias table for Douyin-style product
// exports. Callers may substitute their own table via configuration.
func DefaultAliases() []AliasEntry {
	return []AliasEntry{
		{schema.ProductName, []string{"商品", "商品名称", "产品名", "商品标题", "名称"}},
		{schema.ProductURL, []string{"商品链接", "抖音商品链接", "商品URL", "链接", "URL"}},
		{schema.CategoryL1, []string{"商品分类", "一级类目", "一级分类", "分类", "类目"}},
		{schema.Commission, []string{"佣金比例", "佣金率", "佣金", "提成比例", "分成"}},
		{schema.Sales7d, []string{"近7天销量", "7天销量", "周销量", "7日销量"}},
		{schema.GMV7d, []string{"近7天销售额", "7天GMV", "周销售额", "7日GMV"}},
		{schema.Sales30d, []string{"近30天销量", "30天销量", "月销量"}},
		{schema.GMV30d, []string{"近30天销售额", "30天销售额", "30天GMV", "月销售额"}},
		{schema.LiveGMV30d, []string{"近30天直播GMV", "30天直播GMV", "直播GMV", "直播销售额", "近30天直播销售额"}},
		{schema.LiveGMV7d, []string{"近7天直播GMV", "7天直播GMV"}},
		{schema.CardGMV30d, []string{"近30天商品卡GMV", "30天商品卡GMV", "商品卡GMV", "商品卡销售额", "近30天商品卡销售额"}},
		{schema.Sales1y, []string{"近1年销量", "1年销量", "年销量", "1年销售量"}},
		{schema.Conv30d, []string{"近30天转化率", "30天转化率", "转化率", "转换率"}},
		{schema.RankType, []string{"排名类型", "榜单类型"}},
		{schema.RankNo, []string{"排名", "排名位置", "排行", "名次"}},
		{schema.Influencer7d, []string{"近7天达人数", "7天达人数", "周带货达人", "关联达人", "带货达人", "达人"}},
		{schema.SnapshotTag, []string{"快照标签", "数据快照标签", "标签"}},
		{schema.FileDate, []string{"文件日期", "数据日期"}},
		{schema.DataPeriod, []string{"数据周期", "统计周期"}},
	}
}

// Mapping assigns raw column names to canonical fields. Raw columns absent
// from the mapping are dropped from the canonical schema.
type Mapping map[string]schema.Field

// Columns resolves the raw column names of one file against the alias table.
// Each canonical field is claimed by at most one raw column (first claim
// wins); the exact-match pass runs before the substring pass so a literal
// alias always beats a fuzzy one.
func Columns(columns []string, table []AliasEntry) Mapping {
	mapping := make(Mapping)
	claimed := make(map[schema.Field]bool, len(table))

	// Pass 1: exact alias match.
	for _, entry := range table {
		if claimed[entry.Field] {
			continue
		}
		for _, col := range columns {
			if _, taken := mapping[col]; taken {
				continue
			}
			if containsExact(entry.Aliases, col) {
				mapping[col] = entry.Field
				claimed[entry.Field] = true
				break
			}
		}
	}

	// Pass 2: substring match in either direction for still-unclaimed fields.
	for _, entry := range table {
		if claimed[entry.Field] {
			continue
		}
		for _, col := range columns {
			if _, taken := mapping[col]; taken {
				continue
			}
			if matchesFuzzy(entry.Aliases, col) {
				mapping[col] = entry.Field
				claimed[entry.Field] = true
				break
			}
		}
	}

	return mapping
}

// Resolved returns the set of canonical fields that received a source column.
func (m Mapping) Resolved() map[schema.Field]bool {
	out := make(map[schema.Field]bool, len(m))
	for _, f := range m {
		out[f] = true
	}
	return out
}

// Missing lists canonical fields with no source column, in schema order.
func (m Mapping) Missing() []schema.Field {
	resolved := m.Resolved()
	var missing []schema.Field
	for _, f := range schema.Fields {
		if !resolved[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

func containsExact(aliases []string, col string) bool {
	for _, a := range aliases {
		if col == a {
			return true
		}
	}
	return false
}

func matchesFuzzy(aliases []string, col string) bool {
	for _, a := range aliases {
		if a == "" || col == "" {
			continue
		}
		if strings.Contains(col, a) || strings.Contains(a, col) {
			return true
		}
	}
	return false
}
