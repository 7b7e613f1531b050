package bulkprice

import (
	"WooMasterKit/internal/price"
	"bytes"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func request(t price.ChangeType, amount string, round bool, fields []price.Field, ids ...string) *PriceChangeRequest {
	return &PriceChangeRequest{
		ChangeType: t,
		Amount:     dec(amount),
		Round:      round,
		Fields:     fields,
		ProductIDs: ids,
	}
}

var both = []price.Field{price.Regular, price.Sale}

func TestServiceRun_SimpleProductBothFields(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 10, Name: "Mug", Kind: KindSimple, RegularPrice: "20", SalePrice: "15"})

	report := NewService(store, "$").Run(request(price.Increase, "5", false, both, "10"))

	require.Len(t, report.Products, 1)
	records := report.Products[0].Records
	require.Len(t, records, 2)
	assert.Equal(t, price.Regular, records[0].Field)
	assert.True(t, records[0].Old.Equal(dec("20")))
	assert.True(t, records[0].New.Equal(dec("25")))
	assert.Equal(t, price.Sale, records[1].Field)
	assert.True(t, records[1].New.Equal(dec("20")))

	assert.Equal(t, []int{10}, store.savedIDs())
	saved := store.product(10)
	assert.Equal(t, "25", saved.RegularPrice)
	assert.Equal(t, "20", saved.SalePrice)
}

func TestServiceRun_IncreaseRounded(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 1, Kind: KindSimple, RegularPrice: "100.00"})

	report := NewService(store, "$").Run(request(price.Increase, "9.999", true, []price.Field{price.Regular}, "1"))

	require.Len(t, report.Products[0].Records, 1)
	assert.True(t, report.Products[0].Records[0].New.Equal(dec("110")))
	assert.Equal(t, "110", store.product(1).RegularPrice)
}

func TestServiceRun_DecreaseClampsToZero(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 1, Kind: KindSimple, RegularPrice: "5.00"})

	report := NewService(store, "$").Run(request(price.Decrease, "20.00", false, []price.Field{price.Regular}, "1"))

	assert.True(t, report.Products[0].Records[0].New.Equal(decimal.Zero))
	assert.Equal(t, "0", store.product(1).RegularPrice)
}

func TestServiceRun_ExactSaleOnly(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 1, Kind: KindSimple, RegularPrice: "80", SalePrice: "70"})

	report := NewService(store, "$").Run(request(price.Exact, "49.99", false, []price.Field{price.Sale}, "1"))

	records := report.Products[0].Records
	require.Len(t, records, 1)
	assert.Equal(t, price.Sale, records[0].Field)
	assert.True(t, records[0].New.Equal(dec("49.99")))

	saved := store.product(1)
	assert.Equal(t, "80", saved.RegularPrice)
	assert.Equal(t, "49.99", saved.SalePrice)
}

func TestServiceRun_VariableProduct(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 5, Name: "Shirt", Kind: KindVariable, RegularPrice: "30"},
		Product{ID: 51, RegularPrice: "30", SalePrice: "25"},
		Product{ID: 52, RegularPrice: "32"},
		Product{ID: 53},
	)

	report := NewService(store, "$").Run(request(price.Increase, "2", false, both, "5"))

	assert.Equal(t, []int{51, 52, 53}, store.savedIDs(), "one save per variation, never the parent")

	records := report.Products[0].Records
	require.Len(t, records, 6)
	for _, r := range records {
		assert.Equal(t, 5, r.ProductID)
	}
	assert.Equal(t, 51, records[0].VariationID)
	assert.Equal(t, 53, records[4].VariationID)
	// a variation without prices counts as 0
	assert.True(t, records[4].Old.IsZero())
	assert.True(t, records[4].New.Equal(dec("2")))
	assert.Equal(t, "30", store.product(5).RegularPrice)
}

func TestServiceRun_SkipsEmptyAndUnknownIDs(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 42, Kind: KindSimple, RegularPrice: "10"})

	report := NewService(store, "$").Run(request(price.Increase, "1", false, both, "", "42", "notfound", "999"))

	require.Len(t, report.Products, 1)
	assert.Equal(t, 42, report.Products[0].ProductID)
	assert.Equal(t, []string{"notfound", "999"}, report.Skipped)
	assert.Equal(t, []int{42}, store.savedIDs())
}

func TestServiceRun_SaveFailureDoesNotStopLoop(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 1, Kind: KindSimple, RegularPrice: "10"})
	store.add(Product{ID: 2, Kind: KindSimple, RegularPrice: "10"})
	store.failSave[1] = true

	report := NewService(store, "$").Run(request(price.Increase, "1", false, both, "1", "2"))

	require.Len(t, report.Products, 2)
	assert.Equal(t, 1, report.Products[0].SaveErrors)
	assert.Equal(t, 1, report.SaveErrors())
	assert.Equal(t, []int{1, 2}, store.savedIDs())
	assert.Equal(t, "11", store.product(2).RegularPrice)
}

func TestServiceRun_DuplicateIDsProcessedEachTime(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 1, Kind: KindSimple, RegularPrice: "10"})

	NewService(store, "$").Run(request(price.Increase, "1", false, []price.Field{price.Regular}, "1", "1"))

	assert.Equal(t, "12", store.product(1).RegularPrice)
}

func TestServiceRun_NoFieldsStillReportsProduct(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 3, Kind: KindSimple, RegularPrice: "10"})

	report := NewService(store, "$").Run(request(price.Increase, "1", false, nil, "3"))

	require.Len(t, report.Products, 1)
	assert.Empty(t, report.Products[0].Records)

	var buf bytes.Buffer
	require.NoError(t, report.WriteHTML(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Find("table[data-product-id='3'] tr.empty").Length())
	assert.Equal(t, "Empty", doc.Find("tr.empty td").Text())
}

// Two runs that read the same product before either writes lose one update.
// Bulk changes take no lock on the platform, the last write wins.
func TestServiceRun_ConcurrentRunsLoseUpdate(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 1, Kind: KindSimple, RegularPrice: "100"})

	var reads sync.WaitGroup
	reads.Add(2)
	store.afterFind = func() {
		reads.Done()
		reads.Wait()
	}

	service := NewService(store, "$")
	var runs sync.WaitGroup
	for i := 0; i < 2; i++ {
		runs.Add(1)
		go func() {
			defer runs.Done()
			service.Run(request(price.Increase, "10", false, []price.Field{price.Regular}, "1"))
		}()
	}
	runs.Wait()

	assert.Len(t, store.savedIDs(), 2)
	assert.Equal(t, "110", store.product(1).RegularPrice)
}

func TestReport_WriteHTML(t *testing.T) {
	store := newMemStore()
	store.add(Product{ID: 5, Name: "Shirt", Kind: KindVariable},
		Product{ID: 51, RegularPrice: "30"},
	)
	store.add(Product{ID: 6, Name: "Mug", Kind: KindSimple, RegularPrice: "100", SalePrice: "90"})

	report := NewService(store, "€").Run(request(price.Decrease, "10", false, both, "5", "6", "x"))

	var buf bytes.Buffer
	require.NoError(t, report.WriteHTML(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Find("table.woo-masterkit-report-product").Length())

	variationRows := doc.Find("table[data-product-id='5'] tr.change")
	assert.Equal(t, 2, variationRows.Length())
	assert.Contains(t, variationRows.First().Text(), "Variation #51")
	assert.Equal(t, "€30.00", variationRows.First().Find("td.old").Text())
	assert.Equal(t, "€20.00", variationRows.First().Find("td.new").Text())

	sale := doc.Find("table[data-product-id='6'] tr[data-field='sale']")
	assert.Equal(t, "€80.00", sale.Find("td.new").Text())

	assert.Equal(t, "Skipped: x", doc.Find("p.skipped").Text())
}
