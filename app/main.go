package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/castpress/castpress/app/api"
	"github.com/castpress/castpress/app/audio"
	"github.com/castpress/castpress/app/cfg"
	"github.com/castpress/castpress/app/database"
	"github.com/castpress/castpress/app/feed"
	"github.com/castpress/castpress/app/project"
	"github.com/castpress/castpress/app/timeutil"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	proj, err := project.Load(appCfg.ProjectFile)
	if err != nil {
		slog.Error("Failed to load project", "path", appCfg.ProjectFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Project loaded", "title", proj.Meta.Title, "episodes", len(proj.Episodes))

	if appCfg.AddGUIDs {
		if assigned := proj.AssignGUIDs(); assigned > 0 {
			if err := proj.Save(appCfg.ProjectFile); err != nil {
				slog.Error("Failed to save project", "error", err)
				os.Exit(1)
			}
			slog.Info("Assigned GUIDs", "count", assigned)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(appCfg.CachePath)
	if err != nil {
		slog.Error("Failed to open probe cache", "path", appCfg.CachePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if _, _, err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to migrate probe cache", "error", err)
		os.Exit(1)
	}

	probes := database.NewProbeRepository(db)
	resolveAudio(ctx, appCfg, proj, probes)

	if appCfg.StripTags || appCfg.Tag {
		if err := tagEpisodes(ctx, appCfg, proj); err != nil {
			slog.Error("Tagging failed", "error", err)
			os.Exit(1)
		}
	}

	builder := feed.NewBuilder(&proj.Meta, proj.Episodes, appCfg.ShowEpisodesWithoutMP3)
	doc, err := builder.Make()
	if err != nil {
		slog.Error("Feed build failed", "error", err)
		os.Exit(1)
	}

	if err := feed.Write(doc, appCfg.OutputFile); err != nil {
		slog.Error("Failed to write feed", "error", err)
		os.Exit(1)
	}
	slog.Info("Feed written", "path", appCfg.OutputFile)

	if !appCfg.NoVerify {
		data, err := os.ReadFile(appCfg.OutputFile)
		if err != nil {
			slog.Error("Failed to re-read feed", "error", err)
			os.Exit(1)
		}
		count, err := feed.Verify(data)
		if err != nil {
			slog.Error("Feed verification failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Feed verified", "items", count)
	}

	if appCfg.Serve {
		serve(ctx, appCfg)
	}
}

// resolveAudio fills the derived audio fields of every episode whose MP3 is
// present, probing through the cache. A missing or unprobeable file leaves
// the episode without audio; the builder decides whether to include it.
func resolveAudio(ctx context.Context, appCfg *cfg.Cfg, proj *project.Project, probes database.ProbeRepository) {
	prober := audio.NewProber()

	for i := range proj.Episodes {
		ep := &proj.Episodes[i]
		path := filepath.Join(appCfg.EpisodesDir, ep.AudioFilename())

		fi, err := os.Stat(path)
		if err != nil {
			slog.Debug("Audio file not present", "episode", ep.Title, "path", path)
			continue
		}

		info, err := probes.Get(path, fi.Size(), fi.ModTime())
		if err != nil {
			slog.Warn("Probe cache read failed", "path", path, "error", err)
		}
		if info == nil {
			info, err = prober.Run(ctx, path)
			if err != nil {
				slog.Warn("Probe failed, treating episode as audio-less", "episode", ep.Title, "error", err)
				continue
			}
			if err := probes.Put(path, fi.Size(), fi.ModTime(), info); err != nil {
				slog.Warn("Probe cache write failed", "path", path, "error", err)
			}
		} else {
			slog.Debug("Probe cache hit", "path", path)
		}

		ep.HaveAudio = true
		ep.AudioFormat = info.Format.FormatName

		if size, err := info.SizeBytes(); err == nil {
			ep.AudioSize = size
		} else {
			ep.AudioSize = fi.Size()
		}

		if secs, err := info.DurationSeconds(); err == nil {
			ep.Duration = timeutil.FormatDuration(secs)
		}
	}
}

func tagEpisodes(ctx context.Context, appCfg *cfg.Cfg, proj *project.Project) error {
	tagger := audio.NewTagger()

	for i := range proj.Episodes {
		ep := &proj.Episodes[i]
		if !ep.HaveAudio {
			continue
		}
		path := filepath.Join(appCfg.EpisodesDir, ep.AudioFilename())

		if appCfg.StripTags {
			if err := tagger.StripTags(ctx, path); err != nil {
				return err
			}
		}

		if !appCfg.Tag {
			continue
		}

		track := ep.TrackNumber
		if track == 0 {
			track = i + 1
		}
		genre := ep.Genre
		if genre == "" {
			genre = "Podcast"
		}

		opts := audio.TagOptions{
			Author:          proj.Meta.Authors(),
			AlbumName:       proj.Meta.Title,
			TrackTitle:      ep.Title,
			TrackNumber:     track,
			Genre:           genre,
			Year:            ep.PublishedAt.Year(),
			Comment:         ep.DescriptionShort,
			CommentLanguage: proj.Meta.Locale.Spoken,
			URL:             ep.RemoteURI.Episode,
			CoverImage:      proj.Meta.CoverImageFile,
		}
		if err := tagger.Tag(ctx, path, opts); err != nil {
			return err
		}
		slog.Info("Episode tagged", "episode", ep.Title, "track", track)
	}

	return nil
}

func serve(ctx context.Context, appCfg *cfg.Cfg) {
	handler := api.NewHandler(appCfg.OutputFile, appCfg.EpisodesDir)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      api.NewServer(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Preview server started", "port", appCfg.Port)
		slog.Info("Feed available", "url", "http://localhost:"+appCfg.Port+"/feed.xml")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down preview server")
	case err := <-serverErrChan:
		slog.Error("Preview server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Preview server shutdown error", "error", err)
	}
}
