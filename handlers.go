// handlers.go
package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

func uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	if err := uploadTemplate.ExecuteTemplate(w, "base", UploadPage{}); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func ingestHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(cfg.maxUploadBytes()); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := strings.ToLower(header.Filename)
	var ds *Dataset
	switch {
	case strings.HasSuffix(filename, ".csv"):
		ds, err = processCSV(file)
		if err != nil {
			http.Error(w, fmt.Sprintf("CSV error: %v", err), http.StatusBadRequest)
			return
		}
	case strings.HasSuffix(filename, ".xlsx"), strings.HasSuffix(filename, ".xls"):
		ds, err = processExcel(file)
		if err != nil {
			http.Error(w, fmt.Sprintf("Excel error: %v", err), http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "Invalid file type (want .csv, .xlsx or .xls)", http.StatusBadRequest)
		return
	}

	if cfg.MaxRows > 0 && len(ds.Rows) > cfg.MaxRows {
		http.Error(w, fmt.Sprintf("Too many rows (> %d)", cfg.MaxRows), http.StatusBadRequest)
		return
	}

	ds.Name = header.Filename
	ds.UploadTime = time.Now()
	ds.FileSize = header.Size
	session.Upload(ds)

	http.Redirect(w, r, "/fields", http.StatusSeeOther)
}

func fieldsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/fields", http.StatusSeeOther)
		return
	}
	if !session.HasDataset() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	session.ShowForm()
	renderFieldsPage(w, "")
}

func renderFieldsPage(w http.ResponseWriter, errMsg string) {
	ds := session.Dataset()
	page := FieldsPage{
		FileName:  ds.Name,
		FileSize:  ds.FileSize,
		RowCount:  len(ds.Rows),
		Summaries: summarizeFields(ds),
		Selection: session.Selection(),
		Factors:   ScaleFactors,
		HasSeries: len(session.Series()) > 0,
		Error:     errMsg,
	}
	if err := fieldsTemplate.ExecuteTemplate(w, "base", page); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Failed to render field selection", http.StatusInternalServerError)
	}
}

func generateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/fields", http.StatusSeeOther)
		return
	}
	if !session.HasDataset() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	if xField := r.FormValue("xfield"); xField != "" {
		xScale, err := ParseScaleFactor(r.FormValue("xscale"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := session.SelectX(xField, xScale); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := session.SetYFields(r.Form["yfields"]); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, field := range session.Dataset().Fields {
		raw := r.FormValue("scale_" + field)
		if raw == "" {
			continue
		}
		factor, err := ParseScaleFactor(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := session.SetFactor(field, factor); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if _, err := session.Generate(); err != nil {
		if errors.Is(err, ErrNoXAxis) {
			renderFieldsPage(w, "Select an X axis field before generating.")
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/chart", http.StatusSeeOther)
}

func chartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/chart", http.StatusSeeOther)
		return
	}
	if len(session.Series()) == 0 {
		http.Redirect(w, r, "/fields", http.StatusSeeOther)
		return
	}
	session.ShowChart()
	ds := session.Dataset()
	if err := chartTemplate.ExecuteTemplate(w, "base", ChartPage{FileName: ds.Name}); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Failed to render chart page", http.StatusInternalServerError)
	}
}

func chartEmbedHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/chart", http.StatusSeeOther)
		return
	}
	series := session.Series()
	if len(series) == 0 {
		http.Redirect(w, r, "/fields", http.StatusSeeOther)
		return
	}
	ds := session.Dataset()
	if err := renderLineChart(w, ds.Name, series); err != nil {
		log.Printf("Chart render error: %v", err)
	}
}

func fullScreenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/chart", http.StatusSeeOther)
		return
	}
	if len(session.Series()) == 0 {
		http.Redirect(w, r, "/fields", http.StatusSeeOther)
		return
	}
	session.EnterFullScreen()
	ds := session.Dataset()
	if err := fullScreenTemplate.ExecuteTemplate(w, "base", ChartPage{FileName: ds.Name}); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Failed to render full screen view", http.StatusInternalServerError)
	}
}

func exitFullScreenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/chart", http.StatusSeeOther)
		return
	}
	session.ExitFullScreen()
	http.Redirect(w, r, "/chart", http.StatusSeeOther)
}

func exportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/chart", http.StatusSeeOther)
		return
	}
	series := session.Series()
	ds := session.Dataset()
	if len(series) == 0 || ds == nil {
		http.Redirect(w, r, "/fields", http.StatusSeeOther)
		return
	}
	img, err := renderPNG(series)
	if err != nil {
		// Export failures stay on the operator channel; the user just sees
		// the download not arrive.
		log.Printf("PNG export failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename(ds.Name, time.Now())))
	if _, err := w.Write(img); err != nil {
		log.Printf("PNG export write failed: %v", err)
	}
}
