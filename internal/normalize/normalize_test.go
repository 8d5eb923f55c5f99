package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecomtop/topsel/internal/schema"
)

func TestCell_Numbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"15%", 0.15},
		{"20%", 0.20},
		{"1,250%", 12.5},
		{"1.2万", 12000},
		{"50千", 50000},
		{"12w", 120000},
		{"3W", 30000},
		{"7.5w-10w", 87500},
		{"1千-2千", 1500},
		{"5-10", 7.5},
		{"1,200", 1200},
		{"1,234,567.5", 1234567.5},
		{"3.5", 3.5},
		{"-5", -5},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Cell(tt.input).Float()
			require.True(t, ok, "expected %q to parse as a number", tt.input)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCell_Sentinels(t *testing.T) {
	for _, input := range []string{"", "  ", "—", "无数据", "nan", "NaN", "None", "none"} {
		t.Run(input, func(t *testing.T) {
			require.True(t, Cell(input).IsNull(), "expected %q to normalize to null", input)
		})
	}
}

func TestCell_UnparsableKeepsOriginalText(t *testing.T) {
	for _, input := range []string{"abc", "约1万多", "n/a", "12%x%"} {
		t.Run(input, func(t *testing.T) {
			v := Cell(input)
			require.Equal(t, schema.KindText, v.Kind())
			require.Equal(t, input, v.String())
		})
	}
}

func TestCell_DecisionOrder(t *testing.T) {
	// Percentage wins over plain parsing even with separators.
	v := Cell("1,500%")
	got, ok := v.Float()
	require.True(t, ok)
	require.InDelta(t, 15.0, got, 1e-9)

	// A magnitude range wins over single-unit parsing.
	v = Cell("1万-3万")
	got, ok = v.Float()
	require.True(t, ok)
	require.InDelta(t, 20000.0, got, 1e-9)
}

func TestRecord(t *testing.T) {
	mapping := map[string]schema.Field{
		"商品名称":  schema.ProductName,
		"佣金比例":  schema.Commission,
		"近30天销量": schema.Sales30d,
		"备注":    schema.SnapshotTag,
	}
	row := map[string]string{
		"商品名称":  " 保温杯 ",
		"佣金比例":  "15%",
		"近30天销量": "约三千",
		"备注":    "",
		"无关列":   "whatever",
	}

	rec, unparsed := Record(row, mapping)

	require.Equal(t, 1, unparsed, "unparsable sales cell should be counted")
	require.Equal(t, "保温杯", rec.Text(schema.ProductName))

	c, ok := rec.Float(schema.Commission)
	require.True(t, ok)
	require.InDelta(t, 0.15, c, 1e-9)

	// Unparsable numeric cells keep their original text.
	require.Equal(t, schema.KindText, rec[schema.Sales30d].Kind())
	require.Equal(t, "约三千", rec.Text(schema.Sales30d))

	// Empty text cells and unmapped fields stay null.
	require.True(t, rec[schema.SnapshotTag].IsNull())
	require.True(t, rec[schema.ProductURL].IsNull())

	// Every canonical field is present even when unmapped.
	for _, f := range schema.Fields {
		_, present := rec[f]
		require.True(t, present, "field %s missing from record", f)
	}
}
