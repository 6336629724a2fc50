package registry

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "gia-tri-1")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("item đầu tiên phải là mới")
	}

	isNew, err = r.Register("a", "gia-tri-2")
	if err != nil {
		t.Fatalf("Register ghi đè lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè item cũ phải trả về isNew=false")
	}

	got, exists := r.Get("a")
	if !exists {
		t.Fatal("item 'a' phải tồn tại")
	}
	if got != "gia-tri-2" {
		t.Errorf("Get = %q, muốn giá trị ghi đè gia-tri-2", got)
	}

	if _, exists := r.Get("khong-ton-tai"); exists {
		t.Error("item chưa đăng ký không được tồn tại")
	}
}

func TestRegistry_RegisterTenRong(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với name rỗng phải trả về lỗi")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	got, err := r.GetOrCreate("counter", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lỗi: %v", err)
	}
	if got != 42 {
		t.Errorf("GetOrCreate = %d, muốn 42", got)
	}

	got, err = r.GetOrCreate("counter", creator)
	if err != nil {
		t.Fatalf("GetOrCreate lần hai lỗi: %v", err)
	}
	if got != 42 {
		t.Errorf("GetOrCreate lần hai = %d, muốn 42", got)
	}
	if calls != 1 {
		t.Errorf("creator được gọi %d lần, muốn 1", calls)
	}
}

func TestRegistry_GetOrCreateLoi(t *testing.T) {
	r := NewRegistry[int]()
	wantErr := errors.New("tạo thất bại")
	if _, err := r.GetOrCreate("x", func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("GetOrCreate phải bọc lỗi của creator, got %v", err)
	}
	if _, exists := r.Get("x"); exists {
		t.Error("item không được đăng ký khi creator lỗi")
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "1")

	cleaned := false
	deleted, err := r.Clear("a", func(string) error {
		cleaned = true
		return nil
	})
	if err != nil {
		t.Fatalf("Clear lỗi: %v", err)
	}
	if !deleted {
		t.Error("Clear phải trả về deleted=true")
	}
	if !cleaned {
		t.Error("cleanup phải được gọi trước khi xóa")
	}
	if _, exists := r.Get("a"); exists {
		t.Error("item đã xóa không được tồn tại")
	}

	deleted, err = r.Clear("a", nil)
	if err != nil || deleted {
		t.Errorf("Clear item không tồn tại: deleted=%v err=%v, muốn false/nil", deleted, err)
	}
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	if err != nil {
		t.Fatalf("ClearAll lỗi: %v", err)
	}
	if count != 2 {
		t.Errorf("ClearAll = %d items, muốn 2", count)
	}
	if _, exists := r.Get("a"); exists {
		t.Error("registry phải rỗng sau ClearAll")
	}
}
