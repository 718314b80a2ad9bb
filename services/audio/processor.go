package audio

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/config"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// waveformFPS is how many peak buckets are produced per second of audio.
// The editor's waveform view renders at 50 frames per second.
const waveformFPS = 50

// ErrNotCached is returned when a cache key has no analyzed data behind it.
var ErrNotCached = errors.New("not found in cache")

// ImportResult describes a successfully imported audio file
type ImportResult struct {
	FilePath        string  `json:"file_path"`
	DurationSeconds float64 `json:"duration_seconds"`
	CacheKey        string  `json:"cache_key"`
}

// WaveformData holds the rendered peak series for one audio file
type WaveformData struct {
	Peaks      []float32 `json:"peaks"`
	Duration   float64   `json:"duration"`
	SampleRate uint32    `json:"sample_rate"`
}

// PeakCache holds just the peaks and sample rate, without duration
type PeakCache struct {
	Peaks      []float32 `json:"peaks"`
	SampleRate uint32    `json:"sample_rate"`
}

// Processor imports audio files and serves waveform/peak data from
// in-memory caches keyed by file content identity.
type Processor struct {
	uploadDir string
	cacheDir  string
	logger    *zap.Logger

	mu        sync.Mutex
	waveforms map[string]WaveformData
	peaks     map[string]PeakCache
}

// NewProcessor creates a new audio processor
func NewProcessor(cfg config.StorageConfig, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Processor{
		uploadDir: cfg.UploadDir,
		cacheDir:  cfg.CacheDir,
		logger:    logger,
		waveforms: make(map[string]WaveformData),
		peaks:     make(map[string]PeakCache),
	}
}

// EnsureDirs creates the upload and cache directories
func (p *Processor) EnsureDirs() error {
	for _, dir := range []string{p.uploadDir, p.cacheDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// ProcessUpload saves an uploaded audio stream under a fresh name in the
// upload directory and analyzes it.
func (p *Processor) ProcessUpload(src io.Reader) (*ImportResult, error) {
	fileName := uuid.New().String() + ".wav"
	filePath := filepath.Join(p.uploadDir, fileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	if err := dst.Close(); err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	return p.AnalyzeFile(filePath)
}

// AnalyzeFile decodes an audio file and caches its waveform and peak
// data. A file already analyzed (same path, size and mtime) is served
// from cache without re-decoding.
func (p *Processor) AnalyzeFile(filePath string) (*ImportResult, error) {
	cacheKey, err := CacheKey(filePath)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	cached, ok := p.waveforms[cacheKey]
	p.mu.Unlock()
	if ok {
		p.logger.Debug("serving import from cache", zap.String("cache_key", cacheKey))
		return &ImportResult{
			FilePath:        filePath,
			DurationSeconds: cached.Duration,
			CacheKey:        cacheKey,
		}, nil
	}

	waveform, err := decodeWaveform(filePath)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.waveforms[cacheKey] = waveform
	p.peaks[cacheKey] = PeakCache{Peaks: waveform.Peaks, SampleRate: waveform.SampleRate}
	p.mu.Unlock()

	p.logger.Info("audio file analyzed",
		zap.String("file", filePath),
		zap.String("cache_key", cacheKey),
		zap.Float64("duration_seconds", waveform.Duration),
		zap.Int("peak_buckets", len(waveform.Peaks)))

	return &ImportResult{
		FilePath:        filePath,
		DurationSeconds: waveform.Duration,
		CacheKey:        cacheKey,
	}, nil
}

// Waveform returns the cached waveform data for a cache key
func (p *Processor) Waveform(cacheKey string) (WaveformData, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	waveform, ok := p.waveforms[cacheKey]
	if !ok {
		return WaveformData{}, fmt.Errorf("waveform data %w", ErrNotCached)
	}
	return waveform, nil
}

// Peaks returns the cached peak data for a cache key
func (p *Processor) Peaks(cacheKey string) (PeakCache, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	peaks, ok := p.peaks[cacheKey]
	if !ok {
		return PeakCache{}, fmt.Errorf("peak data %w", ErrNotCached)
	}
	return peaks, nil
}

// CacheKey derives a stable identity for a file from its path, modified
// time and size. Re-importing an unchanged file yields the same key.
func CacheKey(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", filePath, err)
	}

	hasher := sha256.New()
	hasher.Write([]byte(filePath))

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(info.ModTime().Unix()))
	hasher.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(info.Size()))
	hasher.Write(buf[:])

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// decodeWaveform decodes a WAV file and folds its interleaved samples
// into per-bucket absolute peaks.
func decodeWaveform(filePath string) (WaveformData, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return WaveformData{}, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return WaveformData{}, fmt.Errorf("invalid audio file: %s", filePath)
	}

	duration, err := decoder.Duration()
	if err != nil {
		return WaveformData{}, fmt.Errorf("invalid audio file: could not determine duration: %w", err)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return WaveformData{}, fmt.Errorf("failed to decode %s: %w", filePath, err)
	}

	bitDepth := int(decoder.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}

	return WaveformData{
		Peaks:      foldPeaks(buf.Data, int(decoder.SampleRate), bitDepth),
		Duration:   duration.Seconds(),
		SampleRate: decoder.SampleRate,
	}, nil
}

// foldPeaks reduces interleaved PCM samples to one normalized absolute
// peak per bucket of sampleRate/waveformFPS samples.
func foldPeaks(samples []int, sampleRate, bitDepth int) []float32 {
	chunkSize := sampleRate / waveformFPS
	if chunkSize < 1 {
		chunkSize = 1
	}

	fullScale := float32(int64(1) << uint(bitDepth-1))

	peaks := make([]float32, 0, len(samples)/chunkSize+1)
	for start := 0; start < len(samples); start += chunkSize {
		end := start + chunkSize
		if end > len(samples) {
			end = len(samples)
		}

		var peak float32
		for _, s := range samples[start:end] {
			if s < 0 {
				s = -s
			}
			if amp := float32(s) / fullScale; amp > peak {
				peak = amp
			}
		}
		peaks = append(peaks, peak)
	}

	return peaks
}
