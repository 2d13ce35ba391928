package service

import (
	"errors"
	"strconv"
	"testing"
)

func TestShowcaseServiceDocumentBySlug(t *testing.T) {
	productSvc := setupProductServiceTest(t)
	showcaseSvc := NewShowcaseService(productSvc.repo, productSvc.variantRepo)

	created, err := productSvc.Create(saveInput("showcase-doc"))
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	doc, err := showcaseSvc.DocumentBySlug("showcase-doc")
	if err != nil {
		t.Fatalf("document by slug failed: %v", err)
	}
	if doc.ProductID != created.ID {
		t.Fatalf("document product id want %d got %d", created.ID, doc.ProductID)
	}
	if len(doc.OptionGroups) != 2 {
		t.Fatalf("option groups want 2 got %d", len(doc.OptionGroups))
	}
	if len(doc.Variants) != 2 {
		t.Fatalf("variants want 2 got %d", len(doc.Variants))
	}
	if doc.Variants[0].Options[0] != "Red" || doc.Variants[0].Options[1] != "S" {
		t.Fatalf("variant tuple want Red/S got %v", doc.Variants[0].Options)
	}
}

func TestShowcaseServiceInactiveProductHidden(t *testing.T) {
	productSvc := setupProductServiceTest(t)
	showcaseSvc := NewShowcaseService(productSvc.repo, productSvc.variantRepo)

	inactive := saveInput("showcase-inactive")
	off := false
	inactive.IsActive = &off
	if _, err := productSvc.Create(inactive); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if _, err := showcaseSvc.DocumentBySlug("showcase-inactive"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive product want ErrNotFound got %v", err)
	}
}

func TestShowcaseServiceVariantByID(t *testing.T) {
	productSvc := setupProductServiceTest(t)
	showcaseSvc := NewShowcaseService(productSvc.repo, productSvc.variantRepo)

	created, err := productSvc.Create(saveInput("showcase-variant"))
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	id := strconv.FormatUint(uint64(created.Variants[0].ID), 10)
	variant, err := showcaseSvc.VariantByID(id)
	if err != nil {
		t.Fatalf("variant by id failed: %v", err)
	}
	if variant.SKU != "TEE-RED-S" {
		t.Fatalf("variant sku want TEE-RED-S got %s", variant.SKU)
	}

	if _, err := showcaseSvc.VariantByID("999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing variant want ErrNotFound got %v", err)
	}
}
