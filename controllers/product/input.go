package productcontroller

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/shopspring/decimal"
)

// ProductInput holds the writable product fields. Nil fields were not sent.
type ProductInput struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	Slug        *string          `json:"slug" binding:"omitempty,max=255,slug"`
	Category    *uint            `json:"category"`

	image *multipart.FileHeader
}

func isForm(c *gin.Context) bool {
	ct := c.ContentType()
	return ct == binding.MIMEMultipartPOSTForm || ct == binding.MIMEPOSTForm
}

// bindProductInput reads a JSON body or a (multipart) form with an optional
// "image" file, then runs the binding validators.
func bindProductInput(c *gin.Context) (*ProductInput, error) {
	var input ProductInput
	if isForm(c) {
		if err := readForm(c, &input); err != nil {
			return nil, err
		}
	} else if err := c.ShouldBindJSON(&input); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if err := binding.Validator.ValidateStruct(&input); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if input.image != nil && !media.ValidImageName(input.image.Filename) {
		return nil, apperr.Validation(media.ErrUnsupportedImage.Error())
	}
	return &input, nil
}

func readForm(c *gin.Context, input *ProductInput) error {
	if v, ok := c.GetPostForm("name"); ok {
		input.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		input.Description = &v
	}
	if v, ok := c.GetPostForm("slug"); ok && v != "" {
		input.Slug = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return apperr.Validation("invalid price")
		}
		input.Price = &d
	}
	if v, ok := c.GetPostForm("stock"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return apperr.Validation("invalid stock")
		}
		input.Stock = &n
	}
	if v, ok := c.GetPostForm("category"); ok && v != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return apperr.Validation("invalid category")
		}
		cid := uint(id)
		input.Category = &cid
	}

	file, err := c.FormFile("image")
	switch {
	case err == nil:
		input.image = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return apperr.Validation("invalid image upload")
	}
	return nil
}

func validatePrice(p decimal.Decimal) error {
	if err := models.CheckPrice(p); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}

// apply copies the provided fields onto p. A rename keeps the existing slug.
func (in *ProductInput) apply(p *models.Product) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Slug != nil {
		p.Slug = *in.Slug
	}
	if in.Category != nil {
		p.CategoryID = *in.Category
	}
}

func checkCategory(ctx context.Context, categories repository.CategoryRepository, id uint) error {
	if _, err := categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("category not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid product id")
	}
	return uint(id), nil
}

// productError translates repository failures for the product endpoints.
func productError(err error) error {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return apperr.NotFound("product not found")
	case errors.Is(err, repository.ErrDuplicate), errors.Is(err, repository.ErrInvalidInput):
		return apperr.Validation(err.Error())
	default:
		return apperr.Internal(err)
	}
}
