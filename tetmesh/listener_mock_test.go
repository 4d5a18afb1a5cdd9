package tetmesh_test

import (
	"testing"

	gomock "github.com/golang/mock/gomock"

	"github.com/dhale/delaunay/tetmesh"
)

func TestAddListenerFiresInRegistrationOrderWithMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := tetmesh.New()

	var order []string
	first := NewMockListener(ctrl)
	second := NewMockListener(ctrl)
	first.EXPECT().OnEvent(gomock.Any()).Times(2).DoAndReturn(func(e tetmesh.Event) { order = append(order, "first") })
	second.EXPECT().OnEvent(gomock.Any()).Times(2).DoAndReturn(func(e tetmesh.Event) { order = append(order, "second") })

	m.AddListener(first)
	m.AddListener(second)

	if _, err := m.AddSite(0, 0, 0, nil); err != nil {
		t.Fatalf("AddSite: %v", err)
	}

	if len(order) != 4 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected call order: %v", order)
	}
}
