package utils

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/medicard/backend/internal/config"
	"github.com/medicard/backend/internal/hdl"
	"github.com/medicard/backend/internal/repo/s3"
	"go.uber.org/zap"
)

type Response struct {
	Data any `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

var validate = validator.New()

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func SuccessPaginatedResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func MsgResponse(w http.ResponseWriter, statusCode int, message string, id int64) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&MessageResponse{
			Message: message,
			ID:      id,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

func ErrsResponse(w http.ResponseWriter, statusCode int, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorsResponse{
			Errors: errs,
		},
	)
}

// ParseAndValidate decodes the request body into dst and runs struct
// validation. On failure it writes the error response itself and
// reports false.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utilErr(w, r, err)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		errs := make([]string, 0)
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			for i := 0; i < len(verr); i++ {
				errs = append(errs, verr[i].Error())
			}
		} else {
			errs = append(errs, err.Error())
		}
		ErrsResponse(w, http.StatusBadRequest, errs)
		return false
	}

	return true
}

func utilErr(w http.ResponseWriter, r *http.Request, err error) {
	zap.L().Debug(
		"failed to decode request",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
}

// ParsePathID extracts an int64 path parameter registered under name.
func ParsePathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, hdl.ErrToRetrievePathArg
	}
	return id, nil
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, size := config.DefaultPage, config.DefaultSize

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	if s, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && s > 0 {
		size = s
	}

	return page, size
}

func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	for key, vals := range r.URL.Query() {
		if key == "page" || key == "size" {
			continue
		}
		if len(vals) > 0 {
			filters[key] = vals[0]
		}
	}
	return filters
}

// ParseFileField reads the named multipart file into dst. The caller
// must have parsed the form already.
func ParseFileField(r *http.Request, field string, dst *s3.UploadFileRequest) error {
	file, header, err := r.FormFile(field)
	if err != nil {
		return hdl.ErrMissingFile
	}
	defer file.Close()

	if header.Size > config.MaxMemory {
		return hdl.ErrFileTooLarge
	}

	bytes, err := io.ReadAll(file)
	if err != nil {
		zap.L().Error("failed to read uploaded file", zap.Error(err))
		return hdl.ErrInternal
	}

	dst.Name = header.Filename
	dst.ContentType = header.Header.Get("Content-Type")
	dst.File = bytes
	return nil
}
