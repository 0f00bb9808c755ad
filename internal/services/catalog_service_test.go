package services_test

import (
	"errors"
	"strings"
	"testing"

	"pixlumia/internal/domain"
	"pixlumia/internal/services"
	"pixlumia/internal/store"
	"pixlumia/internal/stores"
)

func newCatalogSvc(t *testing.T) *services.CatalogService {
	t.Helper()
	kv := store.NewMemory()
	return services.NewCatalogService(stores.NewCatalogStore(kv), stores.NewStudioStore(kv))
}

func TestCatalogSeedServedByDefault(t *testing.T) {
	svc := newCatalogSvc(t)
	products := svc.List("s1")
	if len(products) != 5 {
		t.Fatalf("want 5 seed products, got %d", len(products))
	}
	if products[0].ID != "test-0" {
		t.Fatalf("want free tester first, got %s", products[0].ID)
	}
	if _, ok := svc.Get("s1", "1"); !ok {
		t.Fatal("seed product 1 missing")
	}
}

func TestCatalogFilterByCategory(t *testing.T) {
	svc := newCatalogSvc(t)
	films := svc.Filter("s1", "Films", "")
	if len(films) != 2 {
		t.Fatalf("want 2 films, got %d", len(films))
	}
	for _, p := range films {
		if p.Category != domain.CategoryFilms {
			t.Fatalf("wrong category in result: %s", p.Category)
		}
	}
	// "Tous" and empty both mean no category filter
	if len(svc.Filter("s1", "Tous", "")) != 5 {
		t.Fatal("Tous must match everything")
	}
	if len(svc.Filter("s1", "", "")) != 5 {
		t.Fatal("empty category must match everything")
	}
}

func TestCatalogSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newCatalogSvc(t)
	got := svc.Filter("s1", "", "iNCePt")
	if len(got) != 1 || got[0].Title != "Inception" {
		t.Fatalf("bad search result: %+v", got)
	}
	// matches description text too
	got = svc.Filter("s1", "", "nolan")
	if len(got) != 1 {
		t.Fatalf("description search failed: %+v", got)
	}
	if len(svc.Filter("s1", "", "zzzz")) != 0 {
		t.Fatal("nonsense query must match nothing")
	}
}

func TestCatalogAddPrependsWithDefaults(t *testing.T) {
	svc := newCatalogSvc(t)
	p, err := svc.Add("s1", services.ProductInput{
		Title:    "Interstellar",
		Category: "pas-une-catégorie",
		Image:    "https://example.com/i.jpg",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Category != domain.CategoryFilms {
		t.Fatalf("invalid category must default to Films, got %s", p.Category)
	}
	if p.Description == "" || p.Rating != 5.0 {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if p.ID == "" {
		t.Fatal("no id assigned")
	}
	list := svc.List("s1")
	if list[0].ID != p.ID {
		t.Fatal("new product must sit at the head of the catalog")
	}
	if len(list) != 6 {
		t.Fatalf("want 6 products, got %d", len(list))
	}
}

func TestCatalogAddRejectsMissingFields(t *testing.T) {
	svc := newCatalogSvc(t)
	if _, err := svc.Add("s1", services.ProductInput{Title: "", Image: "x"}); !errors.Is(err, services.ErrRejected) {
		t.Fatalf("want ErrRejected for missing title, got %v", err)
	}
	if _, err := svc.Add("s1", services.ProductInput{Title: "T", Image: ""}); !errors.Is(err, services.ErrRejected) {
		t.Fatalf("want ErrRejected for missing image, got %v", err)
	}
	if len(svc.List("s1")) != 5 {
		t.Fatal("rejected products must not be stored")
	}
}

func TestCatalogDeleteAndReset(t *testing.T) {
	kv := store.NewMemory()
	studio := stores.NewStudioStore(kv)
	svc := services.NewCatalogService(stores.NewCatalogStore(kv), studio)
	sid := "s1"

	if err := svc.Delete(sid, "1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.Get(sid, "1"); ok {
		t.Fatal("deleted product still present")
	}
	if len(svc.List(sid)) != 4 {
		t.Fatalf("want 4 products after delete, got %d", len(svc.List(sid)))
	}

	if err := studio.SetBackground(sid, "https://example.com/bg.jpg"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reset(sid); err != nil {
		t.Fatal(err)
	}
	if len(svc.List(sid)) != 5 {
		t.Fatal("reset must restore the seed catalog")
	}
	if studio.Background(sid) != "" {
		t.Fatal("reset must drop the studio background")
	}
}

func TestCatalogIsPerSession(t *testing.T) {
	svc := newCatalogSvc(t)
	if err := svc.Delete("s1", "1"); err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.Get("s2", "1"); !ok {
		t.Fatal("one session's delete must not leak into another")
	}
}

func TestBuildCustomPrint(t *testing.T) {
	svc := newCatalogSvc(t)

	p, err := svc.BuildCustomPrint("data:image/png;base64,xyz", "  Ma Photo  ")
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsCustom || p.Category != domain.CategoryPerso {
		t.Fatalf("bad custom print: %+v", p)
	}
	if p.Title != "Ma Photo" {
		t.Fatalf("title not trimmed: %q", p.Title)
	}
	if !strings.HasPrefix(p.ID, "custom-") {
		t.Fatalf("bad custom id %q", p.ID)
	}

	// ids are random, two builds never collide
	q, err := svc.BuildCustomPrint("data:image/png;base64,xyz", "")
	if err != nil {
		t.Fatal(err)
	}
	if q.Title != "Impression Personnalisée" {
		t.Fatalf("missing default title, got %q", q.Title)
	}
	if p.ID == q.ID {
		t.Fatal("custom ids must be unique")
	}

	if _, err := svc.BuildCustomPrint("", "T"); !errors.Is(err, services.ErrRejected) {
		t.Fatalf("want ErrRejected without image, got %v", err)
	}
}
