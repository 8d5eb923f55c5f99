package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name string
		file string
		want FileInfo
	}{
		{
			name: "date range",
			file: "商品库_20250427-20250526.csv",
			want: FileInfo{
				FileDate:    "2025-04-27至2025-05-26",
				DataPeriod:  "30天",
				SnapshotTag: "2025-04-27至2025-05-26",
				SourceTable: "商品库_20250427",
			},
		},
		{
			name: "single date with leaderboard",
			file: "销量榜-20250622.xlsx",
			want: FileInfo{
				FileDate:    "2025-06-22",
				DataPeriod:  "单日数据",
				RankType:    "销量榜",
				SnapshotTag: "2025-06-22",
				SourceTable: "销量榜",
			},
		},
		{
			name: "relative period",
			file: "export_30d.csv",
			want: FileInfo{
				FileDate:    "相对时间(30天)",
				DataPeriod:  "30天",
				SnapshotTag: "相对时间(30天)",
				SourceTable: "export_30d",
			},
		},
		{
			name: "relative yearly period",
			file: "sales_1y.csv",
			want: FileInfo{
				FileDate:    "相对时间(1年)",
				DataPeriod:  "1年",
				SnapshotTag: "相对时间(1年)",
				SourceTable: "sales_1y",
			},
		},
		{
			name: "no recognized date",
			file: "商品表.csv",
			want: FileInfo{
				FileDate:    "未知时间",
				DataPeriod:  "未知周期",
				SnapshotTag: "未知时间",
				SourceTable: "商品表",
			},
		},
		{
			name: "leaderboard without date",
			file: "潜力榜.xlsx",
			want: FileInfo{
				FileDate:    "未知时间",
				DataPeriod:  "未知周期",
				RankType:    "潜力榜",
				SnapshotTag: "未知时间",
				SourceTable: "潜力榜",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FromFilename(tt.file))
		})
	}
}

func TestFromFilename_RangeBeatsSingleDate(t *testing.T) {
	info := FromFilename("data_20250101-20250107.csv")
	require.Equal(t, "2025-01-01至2025-01-07", info.FileDate)
	require.Equal(t, "7天", info.DataPeriod)
}

func TestKnown(t *testing.T) {
	require.True(t, FromFilename("销量榜-20250622.xlsx").Known())
	require.True(t, FromFilename("export_30d.csv").Known())
	require.False(t, FromFilename("商品表.csv").Known())
}
