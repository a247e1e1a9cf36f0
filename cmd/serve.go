package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/ltrask/melodiff/compare"
	"github.com/ltrask/melodiff/constants"
	"github.com/ltrask/melodiff/contour"
	"github.com/ltrask/melodiff/model"
	"github.com/ltrask/melodiff/notes"
	"github.com/ltrask/melodiff/rhythm"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves comparisons over HTTP",
	Long:  `Serves comparisons over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// analyzeRecording runs the extraction half of a comparison for one wire
// recording.
func analyzeRecording(rec model.Recording) ([]model.NoteEvent, model.RhythmProfile, error) {
	if err := contour.Validate(&rec); err != nil {
		return nil, model.RhythmProfile{}, err
	}
	noteSeq, err := notes.Extract(rec.Samples, notes.DefaultOptions())
	if err != nil {
		return nil, model.RhythmProfile{}, err
	}
	return noteSeq, rhythm.Extract(rec.Onsets), nil
}

// HandleCompare is exported so the e2e tests can drive it directly.
func HandleCompare(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.CompareRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	refNotes, refRhythm, err := analyzeRecording(input.Reference)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad reference recording: "+err.Error())
		return
	}
	candNotes, candRhythm, err := analyzeRecording(input.Candidate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad candidate recording: "+err.Error())
		return
	}

	result := compare.Compare(refNotes, candNotes, refRhythm, candRhythm, compare.DefaultConfig())
	response := model.CompareResponse{
		Id:     uuid.New().String(),
		Result: result,
	}
	if input.Reference.Name != "" || input.Candidate.Name != "" {
		attachMetadata(&response, input.Reference.Name, input.Candidate.Name)
	}

	json.NewEncoder(w).Encode(response)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/compare", HandleCompare).Methods("POST")
	handler := cors.Default().Handler(router)

	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
