package routes

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mayra-Sanchez/wm-backend/models"
	"github.com/mayra-Sanchez/wm-backend/testutil"
	"github.com/tealeg/xlsx"
)

func (s *APISuite) multipartRequest(method, path string, u *models.User, fields map[string]string, fileField, fileName string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		s.Require().NoError(mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if u != nil {
		req.Header.Set("Authorization", "Bearer "+s.token(u))
	}
	return req
}

func (s *APISuite) TestAdminCreatesProductClientsReadOnly() {
	w := s.send(http.MethodPost, "/productos/", s.admin, gin.H{
		"name": "Camisa", "description": "Algodon", "price": "19.990", "stock": 10,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](s, w)
	s.Equal("camisa", created["slug"])
	s.Equal("19.990", created["price"])
	s.EqualValues(1, created["category"])
	s.Equal("/media/productos/default.jpg", created["image"])

	w = s.send(http.MethodGet, "/productos/", s.client, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	list := decode[[]map[string]interface{}](s, w)
	s.Require().Len(list, 1)
	s.Equal("Camisa", list[0]["name"])

	s.Equal(http.StatusOK, s.send(http.MethodGet, "/productos/1/", nil, nil).Code)

	s.Equal(http.StatusForbidden, s.send(http.MethodDelete, "/productos/1/", s.client, nil).Code)
	s.Equal(http.StatusForbidden, s.send(http.MethodPost, "/productos/", s.client, gin.H{"name": "X", "price": 1}).Code)
	s.Equal(http.StatusForbidden, s.send(http.MethodPut, "/productos/1/", s.client, gin.H{"stock": 1}).Code)
	s.Equal(http.StatusForbidden, s.send(http.MethodPatch, "/productos/1/", s.client, gin.H{"stock": 1}).Code)
	s.Equal(http.StatusUnauthorized, s.send(http.MethodPatch, "/productos/1/", nil, gin.H{"stock": 1}).Code)

	s.Equal(http.StatusNoContent, s.send(http.MethodDelete, "/productos/1/", s.admin, nil).Code)
	s.Equal(http.StatusNotFound, s.send(http.MethodGet, "/productos/1/", nil, nil).Code)
}

func (s *APISuite) TestProductValidation() {
	cases := []gin.H{
		{"price": "10"},
		{"name": "Sin precio"},
		{"name": "Negativo", "price": "-1"},
		{"name": "Decimales", "price": "1.2345"},
		{"name": "Enorme", "price": "10000000"},
		{"name": "Stock", "price": "1", "stock": -1},
		{"name": "Slug", "price": "1", "slug": "no valido"},
	}
	for _, body := range cases {
		w := s.send(http.MethodPost, "/productos/", s.admin, body)
		s.Equal(http.StatusBadRequest, w.Code, "%v: %s", body, w.Body.String())
	}

	w := s.send(http.MethodPost, "/productos/", s.admin, gin.H{"name": "Gorra", "price": 5, "category": 42})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("category not found", decode[map[string]string](s, w)["error"])

	for _, name := range []string{"!!!", "★★"} {
		w := s.send(http.MethodPost, "/productos/", s.admin, gin.H{"name": name, "price": "1", "stock": 1})
		s.Equal(http.StatusBadRequest, w.Code, name)
		s.Contains(decode[map[string]string](s, w)["error"], "letters or digits", name)
	}

	s.Equal(http.StatusCreated, s.send(http.MethodPost, "/productos/", s.admin, gin.H{"name": "Gorra", "price": 5}).Code)
	w = s.send(http.MethodPost, "/productos/", s.admin, gin.H{"name": "Gorra", "price": 6})
	s.Equal(http.StatusBadRequest, w.Code, "duplicate slug")
}

func (s *APISuite) TestProductFilterByCategory() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 1, 1)
	testutil.CreateProduct(s.T(), s.db, "Blusa", "12", 1, 2)
	testutil.CreateProduct(s.T(), s.db, "Reloj", "30", 1, 3)

	w := s.send(http.MethodGet, "/productos/?category=2", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	list := decode[[]map[string]interface{}](s, w)
	s.Require().Len(list, 1)
	s.Equal("Blusa", list[0]["name"])

	s.Len(decode[[]map[string]interface{}](s, s.send(http.MethodGet, "/productos/?categoria=3", nil, nil)), 1)
	s.Equal(http.StatusBadRequest, s.send(http.MethodGet, "/productos/?category=abc", nil, nil).Code)
}

func (s *APISuite) TestPartialUpdateKeepsSlug() {
	testutil.CreateProduct(s.T(), s.db, "Pantalon", "30", 4, 1)

	w := s.send(http.MethodPatch, "/productos/1/", s.admin, gin.H{"name": "Pantalon Largo", "stock": 9})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	got := decode[map[string]interface{}](s, w)
	s.Equal("Pantalon Largo", got["name"])
	s.Equal("pantalon", got["slug"])
	s.EqualValues(9, got["stock"])
	s.Equal("30.000", got["price"])

	w = s.send(http.MethodPut, "/productos/1/", s.admin, gin.H{"price": "31.5", "category": 2})
	s.Require().Equal(http.StatusOK, w.Code)
	got = decode[map[string]interface{}](s, w)
	s.Equal("31.500", got["price"])
	s.EqualValues(2, got["category"])
	s.Equal("Pantalon Largo", got["name"])

	s.Equal(http.StatusNotFound, s.send(http.MethodPut, "/productos/77/", s.admin, gin.H{"stock": 1}).Code)
}

func (s *APISuite) TestMultipartImageUpload() {
	req := s.multipartRequest(http.MethodPost, "/productos/", s.admin,
		map[string]string{"name": "Vestido", "price": "45.5", "stock": "2", "category": "2"},
		"image", "Vestido Rojo.JPG", []byte("jpeg-bytes"))
	w := s.serve(req)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	got := decode[map[string]interface{}](s, w)
	image := got["image"].(string)
	s.True(strings.HasPrefix(image, "/media/productos/"), image)
	s.True(strings.HasSuffix(image, "_vestido-rojo.jpg"), image)

	rel := strings.TrimPrefix(image, "/media/")
	stored := filepath.Join(s.cfg.MediaRoot, filepath.FromSlash(rel))
	s.FileExists(stored)

	served := s.serve(httptest.NewRequest(http.MethodGet, image, nil))
	s.Equal(http.StatusOK, served.Code)
	s.Equal("jpeg-bytes", served.Body.String())

	// replacing the image removes the previous file
	req = s.multipartRequest(http.MethodPatch, "/productos/1/", s.admin, nil, "image", "nuevo.png", []byte("png"))
	w = s.serve(req)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.NoFileExists(stored)

	newImage := decode[map[string]interface{}](s, w)["image"].(string)
	newStored := filepath.Join(s.cfg.MediaRoot, filepath.FromSlash(strings.TrimPrefix(newImage, "/media/")))
	s.FileExists(newStored)

	s.Equal(http.StatusNoContent, s.send(http.MethodDelete, "/productos/1/", s.admin, nil).Code)
	_, err := os.Stat(newStored)
	s.True(os.IsNotExist(err))
}

func (s *APISuite) TestNonImageUploadRejected() {
	req := s.multipartRequest(http.MethodPost, "/productos/", s.admin,
		map[string]string{"name": "Falda", "price": "20"},
		"image", "notas.txt", []byte("hola"))
	w := s.serve(req)
	s.Equal(http.StatusBadRequest, w.Code)

	entries, _ := os.ReadDir(filepath.Join(s.cfg.MediaRoot, "productos"))
	s.Empty(entries)
}

func (s *APISuite) TestCategoryCRUD() {
	w := s.send(http.MethodGet, "/categorias/", nil, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	cats := decode[[]map[string]interface{}](s, w)
	s.Require().Len(cats, 3)
	s.Equal("hombre", cats[0]["name"])
	s.Len(cats[0], 2)

	s.Equal(http.StatusBadRequest, s.send(http.MethodPost, "/categorias/", nil, gin.H{"name": "ninos"}).Code)
	s.Equal(http.StatusBadRequest, s.send(http.MethodPost, "/categorias/", nil, gin.H{"name": "mujer"}).Code)

	s.Equal(http.StatusOK, s.send(http.MethodGet, "/categorias/3/", nil, nil).Code)
	s.Equal(http.StatusNotFound, s.send(http.MethodGet, "/categorias/9/", nil, nil).Code)

	w = s.send(http.MethodPut, "/categorias/3/", nil, gin.H{"name": "accesorio"})
	s.Equal(http.StatusOK, w.Code)

	testutil.CreateProduct(s.T(), s.db, "Reloj", "30", 1, 3)
	s.Equal(http.StatusBadRequest, s.send(http.MethodDelete, "/categorias/3/", nil, nil).Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodDelete, "/categorias/2/", nil, nil).Code)
	s.Equal(http.StatusNotFound, s.send(http.MethodDelete, "/categorias/2/", nil, nil).Code)
}

func (s *APISuite) TestExcelExportAndImport() {
	testutil.CreateProduct(s.T(), s.db, "Camisa", "10", 1, 1)

	s.Equal(http.StatusForbidden, s.send(http.MethodGet, "/productos-excel/", s.client, nil).Code)

	w := s.send(http.MethodGet, "/productos-excel/", s.admin, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	exported, err := xlsx.OpenBinary(w.Body.Bytes())
	s.Require().NoError(err)
	sheet := exported.Sheets[0]
	s.Require().Equal(2, sheet.MaxRow)
	s.Equal("Camisa", sheet.Rows[1].Cells[1].String())
	s.Equal("10.000", sheet.Rows[1].Cells[3].String())

	book := xlsx.NewFile()
	in, err := book.AddSheet("Productos")
	s.Require().NoError(err)
	rows := [][]string{
		{"ID", "Name", "Description", "Price", "Stock", "CategoryID", "Slug", "Image"},
		{"1", "Camisa Lino", "", "12.5", "3", "1", "", ""},
		{"", "Bolso", "Cuero", "55", "2", "3", "", ""},
		{"", "", "", "5", "1", "1", "", ""},
		{"", "Mala", "", "precio", "1", "1", "", ""},
		{"", "Sin categoria", "", "5", "1", "77", "", ""},
		{"", "Ruta", "", "5", "1", "1", "", "../config/.env.png"},
		{"", "Script", "", "5", "1", "1", "", "productos/x.svg"},
		{"", "Foto", "", "5", "1", "1", "", "productos/foto.png"},
	}
	for _, values := range rows {
		row := in.AddRow()
		for _, v := range values {
			row.AddCell().SetString(v)
		}
	}
	var buf bytes.Buffer
	s.Require().NoError(book.Write(&buf))

	req := s.multipartRequest(http.MethodPost, "/productos-excel/", s.admin, nil, "file", "productos.xlsx", buf.Bytes())
	w = s.serve(req)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	result := decode[map[string]interface{}](s, w)
	s.EqualValues(2, result["created_count"])
	s.EqualValues(1, result["updated_count"])
	s.EqualValues(5, result["skipped_count"])

	var photo models.Product
	s.Require().NoError(s.db.Where("name = ?", "Foto").First(&photo).Error)
	s.Equal("productos/foto.png", photo.Image)
	var rejected int64
	s.db.Model(&models.Product{}).Where("name IN ?", []string{"Ruta", "Script"}).Count(&rejected)
	s.Zero(rejected)

	var updated models.Product
	s.Require().NoError(s.db.First(&updated, 1).Error)
	s.Equal("Camisa Lino", updated.Name)
	s.Equal("camisa", updated.Slug)
	s.Equal("12.5", updated.Price.String())
}
