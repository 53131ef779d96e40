package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/scene"
	"github.com/go-gl/mathgl/mgl64"
)

//go:embed scene.yaml
var defaultScene []byte

// frameDeltas simulates an uneven render clock, in seconds
var frameDeltas = []float64{1.0 / 45.0, 1.0 / 30.0, 1.0 / 90.0, 0.25}

func main() {
	scenePath := flag.String("scene", "", "scene file, the embedded scene is used when empty")
	frames := flag.Int("frames", 120, "number of simulated frames")
	realtime := flag.Bool("realtime", false, "drive the scheduler from the wall clock until interrupted")
	watch := flag.Bool("watch", false, "rebuild the scene when the scene file changes (realtime only)")
	flag.Parse()

	spec, err := loadSpec(*scenePath)
	if err != nil {
		log.Fatalf("failed to load scene: %v", err)
	}

	if *realtime {
		runRealtime(*scenePath, spec, *watch)
		return
	}

	s, err := build(spec)
	if err != nil {
		log.Fatalf("failed to build scene: %v", err)
	}

	for frame := 0; frame < *frames; frame++ {
		s.Scheduler.Advance(frameDeltas[frame%len(frameDeltas)])
	}

	report(s)
}

func loadSpec(path string) (scene.Spec, error) {
	if path == "" {
		return scene.Parse(defaultScene)
	}

	return scene.Load(path)
}

func build(spec scene.Spec) (*scene.Scene, error) {
	s, err := scene.Build(spec, nil)
	if err != nil {
		return nil, err
	}

	for _, entity := range s.Entities {
		entity.OnEnter = func(self *scene.Entity, other *actor.Collider) {
			log.Printf("enter: %s <- %s", self.Name, other.Name)
		}
		entity.OnExit = func(self *scene.Entity, other *actor.Collider) {
			log.Printf("exit:  %s <- %s", self.Name, other.Name)
		}
	}

	s.World.Events.Subscribe(feather2d.TRIGGER_ENTER, func(event feather2d.Event) {
		e := event.(feather2d.TriggerEnterEvent)
		log.Printf("trigger: %s / %s", e.ColliderA.Name, e.ColliderB.Name)
	})

	return s, nil
}

func report(s *scene.Scene) {
	log.Printf("ticks=%d accumulator=%.5f alpha=%.3f", s.Scheduler.Ticks(), s.Scheduler.Accumulator(), s.Scheduler.Alpha())

	for _, entity := range s.Entities {
		if entity.Body == nil {
			continue
		}
		log.Printf("%-8s position=%v velocity=%v grounded=%t wall=%t",
			entity.Name,
			entity.Transform.Position,
			entity.Body.Velocity,
			entity.Body.IsGrounded,
			entity.Body.IsTouchingWall)
	}

	hit, ok := s.World.Raycast(mgl64.Vec2{0, 200}, mgl64.Vec2{1, 0}, 1000)
	if ok {
		log.Printf("raycast: %s at %v distance=%.2f normal=%v", hit.Collider.Name, hit.Point, hit.Distance, hit.Normal)
	} else {
		log.Printf("raycast: no hit")
	}
}

func runRealtime(path string, spec scene.Spec, watch bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reload <-chan string
	if watch && path != "" {
		watcher, err := scene.NewWatcher(filepath.Dir(path))
		if err != nil {
			log.Fatalf("failed to watch %s: %v", path, err)
		}
		defer watcher.Close()
		reload = watcher.Events
	}

	for {
		s, err := build(spec)
		if err != nil {
			log.Fatalf("failed to build scene: %v", err)
		}

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			done <- s.Scheduler.Run(runCtx, time.Second/60)
		}()

		next, reloaded := waitReload(ctx, reload, path)
		cancel()
		<-done

		if !reloaded {
			report(s)
			return
		}
		spec = next
	}
}

// waitReload blocks until the scene file changed and parses again, or ctx is done
func waitReload(ctx context.Context, reload <-chan string, path string) (scene.Spec, bool) {
	for {
		select {
		case <-ctx.Done():
			return scene.Spec{}, false
		case name, ok := <-reload:
			if !ok {
				return scene.Spec{}, false
			}
			if filepath.Clean(name) != filepath.Clean(path) {
				continue
			}
			next, err := scene.Load(path)
			if err != nil {
				log.Printf("scene: reload %s: %v", path, err)
				continue
			}
			log.Printf("scene: reloaded %s", path)
			return next, true
		}
	}
}
