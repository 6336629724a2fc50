// Package common - Test taxonomy lỗi và chuyển đổi lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestErrorIs_Sentinel(t *testing.T) {
	if !errors.Is(ErrTenantNotFound, ErrTenantNotFound) {
		t.Error("sentinel phải Is chính nó")
	}
	if errors.Is(ErrTenantNotFound, ErrSlugTaken) {
		t.Error("hai sentinel khác nhau không được Is nhau")
	}

	// Wrap qua fmt.Errorf vẫn nhận dạng được
	wrapped := fmt.Errorf("tra cứu công ty: %w", ErrTenantNotFound)
	if !errors.Is(wrapped, ErrTenantNotFound) {
		t.Error("sentinel bị wrap phải vẫn Is được")
	}
}

func TestErrorStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"tenant không tồn tại trả 404", ErrTenantNotFound, StatusNotFound},
		{"slug trùng trả 409", ErrSlugTaken, StatusConflict},
		{"sai thông tin đăng nhập trả 401", ErrInvalidCredentials, StatusUnauthorized},
		{"thiếu quyền trả 403", ErrForbidden, StatusForbidden},
		{"bảo hành đã claim trả 400", ErrWarrantyClaimed, StatusBadRequest},
		{"trùng unique index trả 409", ErrMongoDuplicate, StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var appErr *Error
			if !errors.As(tc.err, &appErr) {
				t.Fatalf("%v không phải *Error", tc.err)
			}
			if appErr.StatusCode != tc.want {
				t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, tc.want)
			}
		})
	}
}

func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNoDocuments phải map về ErrNotFound, got %v", got)
	}

	// Lỗi trùng key của write exception
	dupErr := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	if got := ConvertMongoError(dupErr); !errors.Is(got, ErrMongoDuplicate) {
		t.Errorf("duplicate key phải map về ErrMongoDuplicate, got %v", got)
	}

	// Lỗi đã thuộc taxonomy được giữ nguyên
	if got := ConvertMongoError(ErrTenantNotFound); !errors.Is(got, ErrTenantNotFound) {
		t.Errorf("lỗi taxonomy phải giữ nguyên, got %v", got)
	}

	// Lỗi lạ map về lỗi hệ thống chung với status 500
	got := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	if !errors.As(got, &appErr) {
		t.Fatalf("lỗi lạ phải được bọc thành *Error, got %v", got)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, StatusInternalServerError)
	}
}
