package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/natsuneco/organica-chart-converter/internal/chart"
	"github.com/natsuneco/organica-chart-converter/internal/file"
)

var serveListen string

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <chart.json>",
	Short: "Serve a chart (and its audio file, if present) over HTTP",
	Long: `Serves a converted chart for a browser based preview player.
An audio file with the same base name (.mp3, .wav or .ogg) is exposed
under /audio when one exists next to the chart.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(args[0])
	},
}

// newChartHandler serves the encoded chart, its summary, and optionally the
// audio file at audioPath. CORS is open so a locally hosted player page can
// fetch from it.
func newChartHandler(c *chart.Chart, data []byte, audioPath string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chart", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}).Methods("GET")
	router.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(c.Summary())
	}).Methods("GET")
	if audioPath != "" {
		router.HandleFunc("/audio", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, audioPath)
		}).Methods("GET")
	}
	return cors.Default().Handler(router)
}

func serve(chartPath string) error {
	c, err := file.ReadChart(chartPath)
	if err != nil {
		return err
	}
	data, err := c.Encode()
	if err != nil {
		return fmt.Errorf("could not encode %v: %v", chartPath, err)
	}
	audio := file.FindAdjacentAudio(chartPath)
	if audio != "" {
		log.Printf("serving audio file %v under /audio", audio)
	}
	log.Printf("serving %q on %v", c.Title, serveListen)
	return http.ListenAndServe(serveListen, newChartHandler(c, data, audio))
}
