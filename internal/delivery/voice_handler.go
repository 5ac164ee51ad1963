package delivery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_sentiment/internal/audio"
	"github.com/Vovarama1992/voice_sentiment/internal/domain"
	"github.com/dustin/go-humanize"
)

type Pipeline interface {
	Process(ctx context.Context, in audio.Upload) (*domain.Result, error)
	LatestReply() ([]byte, error)
}

type VoiceHandler struct {
	pipeline  Pipeline
	log       *logger.ZapLogger
	maxUpload int64
}

func NewVoiceHandler(p Pipeline, log *logger.ZapLogger, maxUploadBytes int64) *VoiceHandler {
	return &VoiceHandler{
		pipeline:  p,
		log:       log,
		maxUpload: maxUploadBytes,
	}
}

type analysisResponse struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
	Sentiment     string `json:"sentiment"`
	AudioURL      string `json:"audio_url"`
}

var stageMessages = map[domain.Stage]string{
	domain.StageNormalize:  "Failed to process audio",
	domain.StageAnalyze:    "Analysis failed",
	domain.StageSynthesize: "Text-to-speech failed",
}

// Upload takes multipart field "audio" and treats it as MP3.
func (h *VoiceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	fail := func(status int, msg string) {
		writeJSON(w, status, map[string]any{"success": false, "error": msg})
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	data, _, err := h.readFile(r, "audio")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing audio", Error: err})
		fail(http.StatusInternalServerError, err.Error())
		return
	}

	res, err := h.pipeline.Process(r.Context(), audio.Upload{Data: data, Format: audio.FormatMP3})
	if err != nil {
		fail(http.StatusInternalServerError, errorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, okResponse(res))
}

// Analyze takes multipart field "file"; the format comes from the filename extension.
func (h *VoiceHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	fail := func(status int, msg string) {
		writeJSON(w, status, map[string]any{"error": msg})
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	data, name, err := h.readFile(r, "file")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		fail(http.StatusBadRequest, "No file uploaded")
		return
	}
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		fail(http.StatusInternalServerError, err.Error())
		return
	}

	res, err := h.pipeline.Process(r.Context(), audio.Upload{Data: data, Format: extension(name)})
	if err != nil {
		fail(http.StatusInternalServerError, errorMessage(err))
		return
	}
	writeJSON(w, http.StatusOK, okResponse(res))
}

// GetAudio streams the latest reply as a download.
func (h *VoiceHandler) GetAudio(w http.ResponseWriter, _ *http.Request) {
	data, err := h.pipeline.LatestReply()
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "No audio response available"})
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename=response.mp3`)
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *VoiceHandler) readFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("received %s (%s)", header.Filename, humanize.Bytes(uint64(len(data)))),
		Service: "delivery",
	})
	return data, header.Filename, nil
}

func okResponse(res *domain.Result) analysisResponse {
	return analysisResponse{
		Success:       true,
		Transcription: res.Transcription,
		Sentiment:     res.Sentiment,
		AudioURL:      "/get_audio",
	}
}

func errorMessage(err error) string {
	var se *domain.StageError
	if errors.As(err, &se) {
		if msg, ok := stageMessages[se.Stage]; ok {
			return msg
		}
	}
	return err.Error()
}

// extension returns the lowercased text after the last dot, or the whole name.
func extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		filename = filename[i+1:]
	}
	return strings.ToLower(filename)
}
