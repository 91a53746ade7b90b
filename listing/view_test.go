package listing

import (
	"fmt"
	"testing"

	"glomnidesigns.GO/model/entity"
)

func manyDesigns(n int) []entity.Design {
	out := make([]entity.Design, 0, n)
	for i := 1; i <= n; i++ {
		cat := "home"
		if i%2 == 0 {
			cat = "office"
		}
		out = append(out, entity.Design{
			ID:         i,
			Slug:       fmt.Sprintf("d%d", i),
			Name:       fmt.Sprintf("Design %d", i),
			Categories: []entity.CategorySummary{{Slug: cat}},
		})
	}
	return out
}

func TestView_DesignsDefaults(t *testing.T) {
	v := NewView(manyDesigns(40), DesignsView)
	p := v.Result()
	if p.PageSize != DesignsPageSize || p.TotalPages != 3 || p.CurrentPage != 1 {
		t.Fatalf("page = %+v", p)
	}
	// no timestamps: highest id first
	if p.Items[0].ID != 40 || p.Items[15].ID != 25 {
		t.Errorf("first page ids %d..%d", p.Items[0].ID, p.Items[15].ID)
	}
}

func TestView_Navigation(t *testing.T) {
	v := NewView(manyDesigns(40), DesignsView)
	if v.Prev() {
		t.Error("Prev on first page should not move")
	}
	if !v.Next() || !v.Next() {
		t.Fatal("Next should move to page 3")
	}
	if v.Next() {
		t.Error("Next on last page should not move")
	}
	if p := v.Result(); p.CurrentPage != 3 || len(p.Items) != 8 {
		t.Errorf("page 3 = %d items on page %d", len(p.Items), p.CurrentPage)
	}
	v.SetPage(42)
	if v.Result().CurrentPage != 3 {
		t.Errorf("SetPage not clamped: %d", v.Result().CurrentPage)
	}
	v.SetPage(0)
	if v.Result().CurrentPage != 1 {
		t.Errorf("SetPage(0) = %d", v.Result().CurrentPage)
	}
}

func TestView_ResetsPageOnFilterChange(t *testing.T) {
	v := NewView(manyDesigns(40), DesignsView)
	v.SetPage(2)

	v.SetSearch("design")
	if v.Result().CurrentPage != 1 {
		t.Error("search change should reset page")
	}

	v.SetPage(2)
	v.SetSearch("design")
	if v.Result().CurrentPage != 2 {
		t.Error("same search should keep page")
	}

	v.SetCategory("office")
	p := v.Result()
	if p.CurrentPage != 1 || p.TotalItems != 20 {
		t.Errorf("category office = %+v", p)
	}
	for _, d := range v.Filtered() {
		if !d.InCategory("office") {
			t.Fatalf("design %d not in office", d.ID)
		}
	}

	v.SetCategory("")
	if v.Category() != All || v.Result().TotalItems != 40 {
		t.Errorf("empty category should mean all")
	}
}

func TestView_SetItemsKeepsFilters(t *testing.T) {
	v := NewView(manyDesigns(40), DesignsView)
	v.SetSearch("Design 3")
	v.SetItems(manyDesigns(35))
	// "Design 3", "Design 30".."Design 35"
	if got := v.Result().TotalItems; got != 7 {
		t.Errorf("TotalItems = %d", got)
	}
	if v.Search() != "Design 3" {
		t.Error("search lost")
	}
}

func TestView_InteriorsFeatured(t *testing.T) {
	items := []entity.Interior{
		{ID: 1, Title: "Kitchen", IsFeatured: true, ServiceCategory: &entity.ServiceCategory{Slug: "res"}},
		{ID: 2, Title: "Cabin", ServiceCategory: &entity.ServiceCategory{Slug: "com"}},
		{ID: 3, Title: "Wardrobe", IsFeatured: true, ServiceCategory: &entity.ServiceCategory{Slug: "res"}},
	}
	v := NewView(items, InteriorsView)
	if v.Result().TotalItems != 3 {
		t.Fatal("unfiltered view")
	}
	v.SetFeaturedOnly(true)
	if got := ids(v.Filtered()); len(got) != 2 {
		t.Errorf("featured = %v", got)
	}
	v.SetCategory("com")
	if got := v.Filtered(); len(got) != 0 {
		t.Errorf("featured commercial = %v", ids(got))
	}
	v.SetFeaturedOnly(false)
	if got := v.Filtered(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("commercial = %v", ids(got))
	}
	// no sort configured: input order kept
	v.SetCategory(All)
	if got := ids(v.Filtered()); got[0] != 1 || got[2] != 3 {
		t.Errorf("order = %v", got)
	}
}
