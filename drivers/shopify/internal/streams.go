package driver

import (
	"strings"

	"github.com/datazip-inc/source-shopify/types"
	"github.com/datazip-inc/source-shopify/utils/typeutils"
)

// StreamDescriptor is one row of the stream table: everything that differs
// between entities lives here, the engine itself is generic.
type StreamDescriptor struct {
	Name        string
	Path        string // endpoint path, may contain a {SliceKey} segment for child streams
	DataField   string // field of the page payload holding the record list; empty means the payload is the list
	PrimaryKey  string
	CursorField string
	// id-based cursors compare numerically with a 0 floor instead of the
	// lexicographic empty-string default
	NumericCursor bool
	OrderField    string
	FilterField   string
	ExtraParams   map[string]string // sent on the first page only
	Parent        *StreamDescriptor
	SliceKey      string
}

// Slice parameterizes a child stream's request loop by one parent record;
// ephemeral, never persisted.
type Slice struct {
	Key      string
	ParentID any
}

// Endpoint expands the path template for a slice
func (d *StreamDescriptor) Endpoint(slice *Slice) string {
	if slice == nil {
		return d.Path
	}

	return strings.Replace(d.Path, "{"+d.SliceKey+"}", typeutils.FormatValue(slice.ParentID), 1)
}

// AsStream converts the descriptor to its discover representation
func (d *StreamDescriptor) AsStream() *types.Stream {
	return types.NewStream(d.Name).
		WithSyncModes(types.FULLREFRESH, types.INCREMENTAL).
		WithPrimaryKey(d.PrimaryKey).
		WithCursorField(d.CursorField)
}

var (
	ordersDescriptor = &StreamDescriptor{
		Name:        "orders",
		Path:        "orders.json",
		DataField:   "orders",
		PrimaryKey:  "id",
		CursorField: "updated_at",
		OrderField:  "updated_at",
		FilterField: "updated_at_min",
		ExtraParams: map[string]string{"status": "any"},
	}

	priceRulesDescriptor = &StreamDescriptor{
		Name:        "price_rules",
		Path:        "price_rules.json",
		DataField:   "price_rules",
		PrimaryKey:  "id",
		CursorField: "updated_at",
		OrderField:  "updated_at",
		FilterField: "updated_at_min",
	}

	streamTable = []*StreamDescriptor{
		{
			Name:        "customers",
			Path:        "customers.json",
			DataField:   "customers",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
		},
		ordersDescriptor,
		{
			Name:        "draft_orders",
			Path:        "draft_orders.json",
			DataField:   "draft_orders",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
		},
		{
			Name:        "products",
			Path:        "products.json",
			DataField:   "products",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
		},
		{
			// abandoned checkouts live on the checkouts endpoint
			Name:        "abandoned_checkouts",
			Path:        "checkouts.json",
			DataField:   "checkouts",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
			ExtraParams: map[string]string{"status": "any"},
		},
		{
			Name:        "metafields",
			Path:        "metafields.json",
			DataField:   "metafields",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
		},
		{
			Name:        "custom_collections",
			Path:        "custom_collections.json",
			DataField:   "custom_collections",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
		},
		{
			// collects support no datetime filtering upstream, only since_id
			Name:          "collects",
			Path:          "collects.json",
			DataField:     "collects",
			PrimaryKey:    "id",
			CursorField:   "id",
			NumericCursor: true,
			OrderField:    "id",
			FilterField:   "since_id",
		},
		{
			Name:        "order_refunds",
			Path:        "orders/{order_id}/refunds.json",
			DataField:   "refunds",
			PrimaryKey:  "id",
			CursorField: "created_at",
			OrderField:  "created_at",
			FilterField: "created_at_min",
			Parent:      ordersDescriptor,
			SliceKey:    "order_id",
		},
		{
			Name:          "order_risks",
			Path:          "orders/{order_id}/risks.json",
			DataField:     "risks",
			PrimaryKey:    "id",
			CursorField:   "id",
			NumericCursor: true,
			OrderField:    "id",
			FilterField:   "since_id",
			Parent:        ordersDescriptor,
			SliceKey:      "order_id",
		},
		{
			Name:        "transactions",
			Path:        "orders/{order_id}/transactions.json",
			DataField:   "transactions",
			PrimaryKey:  "id",
			CursorField: "created_at",
			OrderField:  "created_at",
			FilterField: "created_at_min",
			Parent:      ordersDescriptor,
			SliceKey:    "order_id",
		},
		{
			Name:        "pages",
			Path:        "pages.json",
			DataField:   "pages",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
		},
		priceRulesDescriptor,
		{
			Name:        "discount_codes",
			Path:        "price_rules/{price_rule_id}/discount_codes.json",
			DataField:   "discount_codes",
			PrimaryKey:  "id",
			CursorField: "updated_at",
			OrderField:  "updated_at",
			FilterField: "updated_at_min",
			Parent:      priceRulesDescriptor,
			SliceKey:    "price_rule_id",
		},
	}
)

func descriptorFor(name string) (*StreamDescriptor, bool) {
	for _, descriptor := range streamTable {
		if descriptor.Name == name {
			return descriptor, true
		}
	}

	return nil, false
}
