package storage

import (
	"strings"
	"testing"
)

func TestBuildObjectKey(t *testing.T) {
	key := BuildObjectKey("receipts", "65f0c1d2e3a4b5c6d7e8f901", "hoadon.JPG")
	if !strings.HasPrefix(key, "receipts/65f0c1d2e3a4b5c6d7e8f901/") {
		t.Errorf("key phải có prefix folder/companyId, got %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("extension phải được chuẩn hóa chữ thường, got %q", key)
	}

	// Hai lần gọi cùng tham số phải sinh key khác nhau
	other := BuildObjectKey("receipts", "65f0c1d2e3a4b5c6d7e8f901", "hoadon.JPG")
	if key == other {
		t.Error("BuildObjectKey phải sinh key duy nhất mỗi lần gọi")
	}

	// File không có extension vẫn sinh được key
	noExt := BuildObjectKey("logos", "65f0c1d2e3a4b5c6d7e8f901", "logo")
	if strings.Contains(noExt[strings.LastIndex(noExt, "/"):], ".") {
		t.Errorf("file không có extension không được thêm dấu chấm, got %q", noExt)
	}
}

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		name   string
		rawURL string
		bucket string
		want   string
	}{
		{"URL do Put sinh ra", "http://minio.local:9000/warrantyhub/receipts/c1/abc.jpg", "warrantyhub", "receipts/c1/abc.jpg"},
		{"URL https", "https://storage.example.com/warrantyhub/logos/c1/x.png", "warrantyhub", "logos/c1/x.png"},
		{"bucket khác", "http://minio.local:9000/other-bucket/receipts/c1/abc.jpg", "warrantyhub", ""},
		{"URL ngoài hệ thống", "https://example.com/image.jpg", "warrantyhub", ""},
		{"URL rỗng", "", "warrantyhub", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := KeyFromURL(tc.rawURL, tc.bucket)
			if got != tc.want {
				t.Errorf("KeyFromURL(%q) = %q, muốn %q", tc.rawURL, got, tc.want)
			}
		})
	}
}

func TestDefaultStore(t *testing.T) {
	old := GetDefaultStore()
	t.Cleanup(func() { SetDefaultStore(old) })

	SetDefaultStore(nil)
	if GetDefaultStore() != nil {
		t.Error("store mặc định chưa cấu hình phải là nil")
	}
}
