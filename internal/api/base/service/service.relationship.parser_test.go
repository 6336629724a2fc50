package basesvc

import (
	"reflect"
	"testing"
)

type brandLike struct {
	_Relationships struct{} `relationship:"collection:products,field:brandId,message:ไม่สามารถลบได้"`
	Name           string
}

type companyLike struct {
	_Relationships struct{} `relationship:"collection:users,field:companyId|collection:brands,field:companyId|collection:warranties,field:companyId"`
}

type plainStruct struct {
	Name string
}

func TestParseRelationshipTag_MotQuanHe(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(brandLike{}))
	if len(rels) != 1 {
		t.Fatalf("muốn 1 quan hệ, got %d", len(rels))
	}
	if rels[0].CollectionName != "products" {
		t.Errorf("CollectionName = %q, muốn products", rels[0].CollectionName)
	}
	if rels[0].FieldName != "brandId" {
		t.Errorf("FieldName = %q, muốn brandId", rels[0].FieldName)
	}
	if rels[0].ErrorMessage != "ไม่สามารถลบได้" {
		t.Errorf("ErrorMessage = %q, muốn thông báo tiếng Thái", rels[0].ErrorMessage)
	}
}

func TestParseRelationshipTag_NhieuQuanHe(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(companyLike{}))
	if len(rels) != 3 {
		t.Fatalf("muốn 3 quan hệ, got %d", len(rels))
	}
	wantCollections := []string{"users", "brands", "warranties"}
	for i, want := range wantCollections {
		if rels[i].CollectionName != want {
			t.Errorf("rels[%d].CollectionName = %q, muốn %q", i, rels[i].CollectionName, want)
		}
		if rels[i].FieldName != "companyId" {
			t.Errorf("rels[%d].FieldName = %q, muốn companyId", i, rels[i].FieldName)
		}
	}
}

func TestParseRelationshipTagValue_CoVaThieu(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantLen int
		check   func(t *testing.T, rels []RelationshipDefinition)
	}{
		{
			name:    "optional va cascade",
			tag:     "collection:products,field:brandId,optional:true|collection:warranties,field:productId,cascade:1",
			wantLen: 2,
			check: func(t *testing.T, rels []RelationshipDefinition) {
				if !rels[0].Optional {
					t.Error("quan hệ đầu phải là optional")
				}
				if !rels[1].Cascade {
					t.Error("quan hệ thứ hai phải là cascade")
				}
			},
		},
		{
			name:    "thieu field thi bo qua",
			tag:     "collection:products|collection:warranties,field:productId",
			wantLen: 1,
			check: func(t *testing.T, rels []RelationshipDefinition) {
				if rels[0].CollectionName != "warranties" {
					t.Errorf("CollectionName = %q, muốn warranties", rels[0].CollectionName)
				}
			},
		},
		{
			name:    "cap khong co dau hai cham thi bo qua",
			tag:     "collection:products,brandId,field:brandId",
			wantLen: 1,
			check: func(t *testing.T, rels []RelationshipDefinition) {
				if rels[0].FieldName != "brandId" {
					t.Errorf("FieldName = %q, muốn brandId", rels[0].FieldName)
				}
			},
		},
		{
			name:    "tag rong",
			tag:     "",
			wantLen: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rels := parseRelationshipTagValue(tt.tag)
			if len(rels) != tt.wantLen {
				t.Fatalf("len = %d, muốn %d", len(rels), tt.wantLen)
			}
			if tt.check != nil {
				tt.check(t, rels)
			}
		})
	}
}

func TestParseRelationshipTag_KhongCoTag(t *testing.T) {
	rels := ParseRelationshipTag(reflect.TypeOf(plainStruct{}))
	if len(rels) != 0 {
		t.Errorf("struct không có tag phải trả về rỗng, got %d", len(rels))
	}
}
