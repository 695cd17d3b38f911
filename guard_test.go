package depot

import (
	"errors"
	"testing"
)

func TestTrackerTransitions(t *testing.T) {
	k := resourceKey{entity: 1, component: 0}

	tests := []struct {
		name    string
		setup   func(tr *accessTracker)
		acquire func(tr *accessTracker) error
		wantErr bool
	}{
		{
			name:    "Read from free",
			setup:   func(tr *accessTracker) {},
			acquire: func(tr *accessTracker) error { return tr.acquireRead(k, "T") },
			wantErr: false,
		},
		{
			name:    "Second concurrent read",
			setup:   func(tr *accessTracker) { tr.acquireRead(k, "T") },
			acquire: func(tr *accessTracker) error { return tr.acquireRead(k, "T") },
			wantErr: false,
		},
		{
			name:    "Write from free",
			setup:   func(tr *accessTracker) {},
			acquire: func(tr *accessTracker) error { return tr.acquireWrite(k, "T") },
			wantErr: false,
		},
		{
			name:    "Write while shared",
			setup:   func(tr *accessTracker) { tr.acquireRead(k, "T") },
			acquire: func(tr *accessTracker) error { return tr.acquireWrite(k, "T") },
			wantErr: true,
		},
		{
			name:    "Write while exclusive",
			setup:   func(tr *accessTracker) { tr.acquireWrite(k, "T") },
			acquire: func(tr *accessTracker) error { return tr.acquireWrite(k, "T") },
			wantErr: true,
		},
		{
			name:    "Read while exclusive",
			setup:   func(tr *accessTracker) { tr.acquireWrite(k, "T") },
			acquire: func(tr *accessTracker) error { return tr.acquireRead(k, "T") },
			wantErr: true,
		},
		{
			name: "Write after readers drain",
			setup: func(tr *accessTracker) {
				tr.acquireRead(k, "T")
				tr.acquireRead(k, "T")
				tr.releaseRead(k)
				tr.releaseRead(k)
			},
			acquire: func(tr *accessTracker) error { return tr.acquireWrite(k, "T") },
			wantErr: false,
		},
		{
			name: "Write after writer releases",
			setup: func(tr *accessTracker) {
				tr.acquireWrite(k, "T")
				tr.releaseWrite(k)
			},
			acquire: func(tr *accessTracker) error { return tr.acquireWrite(k, "T") },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newAccessTracker()
			tt.setup(tr)
			err := tt.acquire(tr)
			if (err != nil) != tt.wantErr {
				t.Errorf("acquire error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var conflict AccessConflictError
				if !errors.As(err, &conflict) {
					t.Errorf("error %v is not an AccessConflictError", err)
				}
			}
		})
	}
}

func TestTrackerResourcesAreIndependent(t *testing.T) {
	tr := newAccessTracker()
	a := resourceKey{entity: 1, component: 0}
	b := resourceKey{entity: 1, component: 1}
	c := resourceKey{entity: 2, component: 0}

	if err := tr.acquireWrite(a, "A"); err != nil {
		t.Fatalf("write on a: %v", err)
	}
	if err := tr.acquireWrite(b, "B"); err != nil {
		t.Errorf("write on same entity, different component failed: %v", err)
	}
	if err := tr.acquireWrite(c, "C"); err != nil {
		t.Errorf("write on different entity failed: %v", err)
	}
}

func TestTrackerConflictErrorDetail(t *testing.T) {
	tr := newAccessTracker()
	k := resourceKey{entity: 7, component: 3}
	tr.acquireRead(k, "depot.Position")
	tr.acquireRead(k, "depot.Position")

	err := tr.acquireWrite(k, "depot.Position")
	var conflict AccessConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("error %v is not an AccessConflictError", err)
	}
	if conflict.Readers != 2 || conflict.Exclusive {
		t.Errorf("conflict detail = %+v, want 2 readers, not exclusive", conflict)
	}
	if conflict.Entity != 7 {
		t.Errorf("conflict entity = %d, want 7", conflict.Entity)
	}
}
