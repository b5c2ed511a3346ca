package model

import (
	"testing"
	"time"
)

func TestReceipt_GenerateFileName(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	abo := TypeAppAbo

	tests := []struct {
		name    string
		receipt Receipt
		want    string
	}{
		{
			name: "all fields present",
			receipt: Receipt{
				Date:    &date,
				Company: "Apple",
				Type:    &abo,
				Product: "Perplexity",
			},
			want: "15.03.2024-Apple-app-abo-Perplexity",
		},
		{
			name: "no product",
			receipt: Receipt{
				Date:    &date,
				Company: "Apple",
				Type:    &abo,
			},
			want: "15.03.2024-Apple-app-abo",
		},
		{
			name:    "everything missing falls back to literals",
			receipt: Receipt{},
			want:    "00.00.0000-Unbekannt-beleg",
		},
		{
			name: "missing date only",
			receipt: Receipt{
				Company: "Billa",
				Type:    TypePtr(TypeKassenbon),
			},
			want: "00.00.0000-Billa-kassenbon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.receipt.GenerateFileName(); got != tt.want {
				t.Errorf("GenerateFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReceipt_FileExtension(t *testing.T) {
	r := Receipt{Path: "/tmp/scans/Rechnung_2024.PDF"}
	if got := r.FileExtension(); got != "pdf" {
		t.Errorf("FileExtension() = %q, want %q", got, "pdf")
	}
	if !r.IsPDF() {
		t.Error("IsPDF() = false, want true")
	}
	if r.IsImage() {
		t.Error("IsImage() = true, want false")
	}
}

func TestCompany_Validate(t *testing.T) {
	tests := []struct {
		name    string
		company Company
		wantErr bool
	}{
		{
			name:    "valid learned company",
			company: NewCompany("Bäckerei Huber", []string{"Huber", "bäckerei huber"}, TypePtr(TypeKassenbon), true),
		},
		{
			name:    "missing name",
			company: Company{Keywords: []string{"x"}},
			wantErr: true,
		},
		{
			name:    "no keywords",
			company: Company{Name: "Empty"},
			wantErr: true,
		},
		{
			name:    "uppercase keyword rejected",
			company: Company{Name: "Shouty", Keywords: []string{"SHOUTY"}},
			wantErr: true,
		},
		{
			name:    "unknown receipt type",
			company: Company{Name: "Odd", Keywords: []string{"odd"}, DefaultType: TypePtr(ReceiptType("mystery"))},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.company.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCompany_LowercasesKeywords(t *testing.T) {
	c := NewCompany("Avanti", []string{"AVANTI", "OMV Downstream"}, nil, false)
	if c.Keywords[0] != "avanti" || c.Keywords[1] != "omv downstream" {
		t.Errorf("keywords not lowercased: %v", c.Keywords)
	}
}

func TestCompany_Matches(t *testing.T) {
	c := NewCompany("OMV", []string{"omv", "viva "}, TypePtr(TypeTankbeleg), false)
	if kw, ok := c.Matches("omv downstream gmbh"); !ok || kw != "omv" {
		t.Errorf("Matches() = %q, %v; want omv, true", kw, ok)
	}
	if _, ok := c.Matches("shell austria"); ok {
		t.Error("Matches() unexpectedly matched")
	}

	empty := Company{Name: "NoKeywords"}
	if _, ok := empty.Matches("nokeywords"); ok {
		t.Error("company with no keywords must never match")
	}
}

func TestParseReceiptType(t *testing.T) {
	for _, rt := range AllReceiptTypes {
		got, ok := ParseReceiptType(string(rt))
		if !ok || got != rt {
			t.Errorf("ParseReceiptType(%q) = %q, %v", rt, got, ok)
		}
		if rt.DisplayName() == "" {
			t.Errorf("DisplayName for %q is empty", rt)
		}
		if len(rt.Keywords()) == 0 {
			t.Errorf("Keywords for %q is empty", rt)
		}
	}
	if _, ok := ParseReceiptType("nope"); ok {
		t.Error("ParseReceiptType accepted unknown tag")
	}
}
