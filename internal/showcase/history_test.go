package showcase

import "testing"

func TestSetVariantParamRoundTrip(t *testing.T) {
	history, err := NewHistory("https://shop.example.com/products/classic-tee?ref=mail")
	if err != nil {
		t.Fatalf("new history failed: %v", err)
	}

	history.SetVariantParam(42)

	if got := history.VariantParam(); got != "42" {
		t.Fatalf("variant param want 42 got %q", got)
	}
	current := history.Current()
	if current.Query().Get("ref") != "mail" {
		t.Fatalf("existing query param lost: %s", current.RawQuery)
	}
}

func TestSetVariantParamReplacesInPlace(t *testing.T) {
	history, err := NewHistory("https://shop.example.com/products/classic-tee")
	if err != nil {
		t.Fatalf("new history failed: %v", err)
	}

	history.SetVariantParam(1)
	history.SetVariantParam(2)
	history.SetVariantParam(3)

	// 深链接写入走 replace，返回栈不增长
	if history.Len() != 1 {
		t.Fatalf("history len want 1 got %d", history.Len())
	}
	if got := history.VariantParam(); got != "3" {
		t.Fatalf("variant param want 3 got %q", got)
	}
}

func TestHistoryPushGrowsStack(t *testing.T) {
	history, err := NewHistory("https://shop.example.com/products/classic-tee")
	if err != nil {
		t.Fatalf("new history failed: %v", err)
	}

	next := *history.Current()
	next.Path = "/products/canvas-tote"
	history.Push(&next)

	if history.Len() != 2 {
		t.Fatalf("history len want 2 got %d", history.Len())
	}
	if history.Current().Path != "/products/canvas-tote" {
		t.Fatalf("current path want /products/canvas-tote got %s", history.Current().Path)
	}
}
