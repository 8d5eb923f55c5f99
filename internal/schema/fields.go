package schema

// Field identifies one of the canonical columns every ingested table is
// mapped onto. The constant order below is the output column order.
type Field string

const (
	ProductName  Field = "product_name"
	ProductURL   Field = "product_url"
	CategoryL1   Field = "category_l1"
	Commission   Field = "commission"
	Sales7d      Field = "sales_7d"
	GMV7d        Field = "gmv_7d"
	Sales30d     Field = "sales_30d"
	GMV30d       Field = "gmv_30d"
	LiveGMV30d   Field = "live_gmv_30d"
	LiveGMV7d    Field = "live_gmv_7d"
	CardGMV30d   Field = "card_gmv_30d"
	Sales1y      Field = "sales_1y"
	Conv30d      Field = "conv_30d"
	RankType     Field = "rank_type"
	RankNo       Field = "rank_no"
	Influencer7d Field = "influencer_7d"
	SnapshotTag  Field = "snapshot_tag"
	FileDate     Field = "file_date"
	DataPeriod   Field = "data_period"
)

// Fields lists all canonical fields in output order.
var Fields = []Field{
	ProductName, ProductURL, CategoryL1, Commission,
	Sales7d, GMV7d, Sales30d, GMV30d,
	LiveGMV30d, LiveGMV7d, CardGMV30d,
	Sales1y, Conv30d, RankType, RankNo,
	Influencer7d, SnapshotTag, FileDate, DataPeriod,
}

var numeric = map[Field]bool{
	Commission:   true,
	Sales7d:      true,
	GMV7d:        true,
	Sales30d:     true,
	GMV30d:       true,
	LiveGMV30d:   true,
	LiveGMV7d:    true,
	CardGMV30d:   true,
	Sales1y:      true,
	Conv30d:      true,
	RankNo:       true,
	Influencer7d: true,
}

// Numeric reports whether cells of this field pass through the numeric
// normalizer. The rest are carried as free text.
func (f Field) Numeric() bool { return numeric[f] }

// Known reports whether f is one of the canonical fields.
func Known(f Field) bool {
	for _, c := range Fields {
		if c == f {
			return true
		}
	}
	return false
}
