package depot

import "testing"

type recordingSystem struct {
	name string
	log  *[]string
}

func (s recordingSystem) Execute(w *World, deltaTime float64) {
	*s.log = append(*s.log, s.name)
}

func TestExecutorRunsInRegistrationOrder(t *testing.T) {
	var log []string
	x := Factory.NewExecutor()
	x.AddSystem(recordingSystem{"movement", &log})
	x.AddSystem(recordingSystem{"collision", &log})
	x.AddSystem(recordingSystem{"cleanup", &log})

	w := Factory.NewWorld()
	x.Execute(w, 0.016)
	x.Execute(w, 0.016)

	want := []string{"movement", "collision", "cleanup", "movement", "collision", "cleanup"}
	if len(log) != len(want) {
		t.Fatalf("executed %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("execution order %v, want %v", log, want)
		}
	}
}

func TestSystemFuncAdapter(t *testing.T) {
	var gotDt float64
	x := Factory.NewExecutor()
	x.AddSystem(SystemFunc(func(w *World, dt float64) {
		gotDt = dt
	}))

	x.Execute(Factory.NewWorld(), 0.5)
	if gotDt != 0.5 {
		t.Errorf("system received dt %v, want 0.5", gotDt)
	}
}

func TestMovementSystem(t *testing.T) {
	w := Factory.NewWorld()
	e := w.CreateEntity()
	testPosition.Add(w, e, Position{X: 1, Y: 1})
	testVelocity.Add(w, e, Velocity{X: 2, Y: -2})

	movement := SystemFunc(func(w *World, dt float64) {
		for row := range Query2(w, testPosition, testVelocity) {
			row.A.X += row.B.X * dt
			row.A.Y += row.B.Y * dt
		}
	})

	x := Factory.NewExecutor()
	x.AddSystem(movement)
	x.Execute(w, 0.5)

	pos, _ := testPosition.Get(w, e)
	if pos.X != 2 || pos.Y != 0 {
		t.Errorf("position after step = %+v, want {2 0}", *pos)
	}
}

func TestSceneStepAppliesCommandsAfterSystems(t *testing.T) {
	scene := Factory.NewScene()
	e := scene.Instantiate()

	spawner := SystemFunc(func(w *World, dt float64) {
		// Defer a component add from inside a system; it must land only at
		// the end of the step.
		AddComponentDeferred(scene.CommandBuffer(), e.ID(), testHealth, Health{Current: 1})
		if testHealth.Has(w, e.ID()) {
			t.Error("deferred add visible during system execution")
		}
	})

	x := Factory.NewExecutor()
	x.AddSystem(spawner)

	if err := scene.Step(x, 0.016); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if !e.HasComponent(testHealth) {
		t.Error("deferred add missing after Step")
	}
}
