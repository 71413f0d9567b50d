package productcontroller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/apperr"
	"github.com/mayra-Sanchez/wm-backend/media"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/repository"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

type importResult struct {
	Message string `json:"message"`
	Created int    `json:"created_count"`
	Updated int    `json:"updated_count"`
	Skipped int    `json:"skipped_count"`
}

// POST /productos-excel/ with an .xlsx upload in the "file" field. Rows whose
// ID matches an existing product update it; other valid rows are created.
func ImportProductsFromExcel(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			apperr.Abort(c, apperr.Validation("excel file is required"))
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			apperr.Abort(c, apperr.Internal(err))
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			apperr.Abort(c, apperr.Validation("failed to parse excel file"))
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			apperr.Abort(c, apperr.Validation("excel file is empty or missing header row"))
			return
		}

		sheet := xlFile.Sheets[0]
		var result importResult
		for i := 1; i < sheet.MaxRow; i++ {
			switch importRow(c.Request.Context(), store, sheet.Rows[i]) {
			case rowCreated:
				result.Created++
			case rowUpdated:
				result.Updated++
			default:
				result.Skipped++
			}
		}

		result.Message = "import completed"
		c.JSON(http.StatusOK, result)
	}
}

type rowOutcome int

const (
	rowSkipped rowOutcome = iota
	rowCreated
	rowUpdated
)

func importRow(ctx context.Context, store *repository.Store, row *xlsx.Row) rowOutcome {
	if row == nil {
		return rowSkipped
	}
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}

	name := get(1)
	price, err := decimal.NewFromString(get(3))
	if name == "" || err != nil || validatePrice(price) != nil {
		return rowSkipped
	}
	stock := 0
	if s := get(4); s != "" {
		if stock, err = strconv.Atoi(s); err != nil || stock < 0 {
			return rowSkipped
		}
	}
	categoryID := uint(models.DefaultCategoryID)
	if s := get(5); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return rowSkipped
		}
		categoryID = uint(id)
	}
	if checkCategory(ctx, store.Categories, categoryID) != nil {
		return rowSkipped
	}

	image := get(7)
	if image != "" && !media.ValidImagePath(image) {
		return rowSkipped
	}

	fields := models.Product{
		Name:        name,
		Description: get(2),
		Price:       price,
		Stock:       stock,
		CategoryID:  categoryID,
		Slug:        get(6),
		Image:       image,
	}

	if id, err := strconv.ParseUint(get(0), 10, 64); err == nil {
		if existing, err := store.Products.GetByID(ctx, uint(id)); err == nil {
			existing.Name = fields.Name
			existing.Description = fields.Description
			existing.Price = fields.Price
			existing.Stock = fields.Stock
			existing.CategoryID = fields.CategoryID
			if fields.Slug != "" {
				existing.Slug = fields.Slug
			}
			if fields.Image != "" {
				existing.Image = fields.Image
			}
			if store.Products.Update(ctx, existing) != nil {
				return rowSkipped
			}
			return rowUpdated
		}
	}

	if store.Products.Create(ctx, &fields) != nil {
		return rowSkipped
	}
	return rowCreated
}
