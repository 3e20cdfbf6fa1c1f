package dto

import (
	"bytes"
	"deportur/internal/domains/equipment/model"
	"deportur/shared"
	"deportur/shared/base64"
	"deportur/shared/constant"
	gModel "deportur/shared/model"
	"deportur/shared/timezone"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"
)

const MaxImageSize = 5 << 20

var ImageContentTypes = []string{"image/png", "image/jpeg", "image/jpg", "image/webp"}

type EquipmentRequest struct {
	Name          string  `json:"nombre"           validate:"required,max=100"`
	TypeID        int64   `json:"idTipo"           validate:"required,gt=0"`
	Brand         string  `json:"marca"            validate:"required,max=50"`
	Condition     string  `json:"estado"           validate:"required,oneof=NUEVO BUENO REGULAR DISPONIBLE RESERVADO EN_MANTENIMIENTO MANTENIMIENTO FUERA_DE_SERVICIO"`
	RentalPrice   float64 `json:"precioAlquiler"   validate:"gt=0"`
	AcquiredOn    string  `json:"fechaAdquisicion" validate:"required"`
	DestinationID int64   `json:"idDestino"        validate:"required,gt=0"`
	Available     *bool   `json:"disponible"`
	ImageURL      string  `json:"imagenUrl"        validate:"omitempty,url"`

	acquiredOn gModel.Date
}

func (r *EquipmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Brand = strings.TrimSpace(r.Brand)
	r.Condition = strings.ToUpper(strings.TrimSpace(r.Condition))
	r.AcquiredOn = strings.TrimSpace(r.AcquiredOn)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// Validate parses the acquisition date, which cannot be in the future.
func (r *EquipmentRequest) Validate() error {
	acquiredOn, err := gModel.ParseDate(r.AcquiredOn)
	if err != nil {
		return errors.New("fechaAdquisicion must be a valid date")
	}

	if acquiredOn.After(gModel.Date{Time: timezone.Today()}) {
		return errors.New("fechaAdquisicion cannot be in the future")
	}

	r.acquiredOn = acquiredOn

	return nil
}

func (r *EquipmentRequest) ToInput() model.Input {
	input := model.Input{
		Name:          r.Name,
		TypeID:        r.TypeID,
		Brand:         r.Brand,
		Condition:     model.Condition(r.Condition),
		RentalPrice:   r.RentalPrice,
		AcquiredOn:    r.acquiredOn,
		DestinationID: r.DestinationID,
		Available:     true,
		ImageURL:      shared.TrimPtr(r.ImageURL),
	}

	if r.Available != nil {
		input.Available = *r.Available
	}

	return input
}

type AvailabilityRequest struct {
	DestinationID int64  `json:"destination_id" validate:"required,gt=0"`
	Start         string `json:"start_date"     validate:"required"`
	End           string `json:"end_date"       validate:"required"`

	start gModel.Date
	end   gModel.Date
}

func (r *AvailabilityRequest) Normalize() {
	r.Start = strings.TrimSpace(r.Start)
	r.End = strings.TrimSpace(r.End)
}

func (r *AvailabilityRequest) Validate() error {
	start, err := gModel.ParseDate(r.Start)
	if err != nil {
		return errors.New("start_date must be a valid date")
	}

	end, err := gModel.ParseDate(r.End)
	if err != nil {
		return errors.New("end_date must be a valid date")
	}

	if start.After(end) {
		return errors.New("end_date must be on or after start_date")
	}

	r.start, r.end = start, end

	return nil
}

func (r *AvailabilityRequest) Range() (gModel.Date, gModel.Date) {
	return r.start, r.end
}

// ImageRequest is an image sent as a data URI in a JSON body.
type ImageRequest struct {
	Image string `json:"imagen" validate:"required"`
}

// ImageUpload is a decoded image ready to be stored.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

func (u *ImageUpload) Validate() error {
	if len(u.Data) == 0 {
		return errors.New("imagen is required")
	}

	if !slices.Contains(ImageContentTypes, u.ContentType) {
		return fmt.Errorf("imagen must be one of %s", strings.Join(ImageContentTypes, " "))
	}

	if len(u.Data) > MaxImageSize {
		return fmt.Errorf("imagen must not exceed %d MB", MaxImageSize>>20)
	}

	return nil
}

// Extension is the file extension matching the content type.
func (u *ImageUpload) Extension() string {
	switch u.ContentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func (r ImageRequest) ToUpload() (ImageUpload, error) {
	data, contentType, err := base64.Decode(strings.TrimSpace(r.Image))
	if err != nil {
		return ImageUpload{}, errors.New("imagen must be a base64 data URI")
	}

	return ImageUpload{ContentType: contentType, Data: data}, nil
}

// ImageFromMultipart reads an uploaded file, sniffing the content type when the client
// did not send one.
func ImageFromMultipart(header *multipart.FileHeader) (ImageUpload, error) {
	if header == nil {
		return ImageUpload{}, errors.New("imagen is required")
	}

	if header.Size > MaxImageSize {
		return ImageUpload{}, fmt.Errorf("imagen must not exceed %d MB", MaxImageSize>>20)
	}

	file, err := header.Open()
	if err != nil {
		return ImageUpload{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, io.LimitReader(file, MaxImageSize+1)); err != nil {
		return ImageUpload{}, fmt.Errorf("failed to read image: %w", err)
	}

	contentType := header.Header.Get(constant.RequestHeaderContentType)
	if contentType == constant.Empty {
		contentType = http.DetectContentType(buf.Bytes())
	}

	return ImageUpload{FileName: header.Filename, ContentType: contentType, Data: buf.Bytes()}, nil
}
