package mansion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detectivequest/internal/game"
)

func buildManor(t *testing.T) *Location {
	t.Helper()

	hall := NewLocation("Hall de Entrada", "Pegada com lama no tapete")
	sala := NewLocation("Sala de Estar", "Copo quebrado no chão")
	cozinha := NewLocation("Cozinha", "Faca com marcas recentes")
	biblioteca := NewLocation("Biblioteca", "Livro raro fora da estante")
	jardim := NewLocation("Jardim", "Terra revirada junto ao canteiro")
	quarto := NewLocation("Quarto", "Bilhete rasgado sob a cama")
	adega := NewLocation("Adega", "Chave antiga com ferrugem")

	require.NoError(t, Link(hall, Left, sala))
	require.NoError(t, Link(hall, Right, cozinha))
	require.NoError(t, Link(sala, Left, biblioteca))
	require.NoError(t, Link(sala, Right, jardim))
	require.NoError(t, Link(cozinha, Left, quarto))
	require.NoError(t, Link(cozinha, Right, adega))

	return hall
}

func TestNewLocationIsChildless(t *testing.T) {
	loc := NewLocation("Jardim", "")

	left, right := loc.Children()
	assert.Nil(t, left)
	assert.Nil(t, right)
	assert.True(t, loc.IsLeaf())
	assert.False(t, loc.HasClue())
}

func TestNewLocationTruncates(t *testing.T) {
	loc := NewLocation(strings.Repeat("n", 200), strings.Repeat("c", 300))

	assert.Len(t, loc.Name, game.MaxNameLen)
	assert.Len(t, loc.Clue, game.MaxClueLen)
}

func TestLinkAndNavigate(t *testing.T) {
	hall := buildManor(t)

	sala := hall.Child(Left)
	require.NotNil(t, sala)
	assert.Equal(t, "Sala de Estar", sala.Name)

	jardim := sala.Child(Right)
	require.NotNil(t, jardim)
	assert.Equal(t, "Jardim", jardim.Name)
	assert.True(t, jardim.IsLeaf())
	assert.Nil(t, jardim.Child(Right))
	assert.Equal(t, 7, Count(hall))
}

func TestLinkRejections(t *testing.T) {
	a := NewLocation("A", "")
	b := NewLocation("B", "")
	c := NewLocation("C", "")

	require.NoError(t, Link(a, Left, b))

	assert.ErrorIs(t, Link(a, Left, c), ErrSlotOccupied)
	assert.ErrorIs(t, Link(a, Right, a), ErrSelfLink)
	assert.ErrorIs(t, Link(nil, Left, c), ErrNilLocation)
	assert.ErrorIs(t, Link(a, Right, nil), ErrNilLocation)
	assert.ErrorIs(t, Link(a, Side(7), c), ErrUnknownSide)

	_, right := a.Children()
	assert.Nil(t, right)
}

func TestWalkPreOrder(t *testing.T) {
	hall := buildManor(t)

	var names []string
	var depths []int
	Walk(hall, func(loc *Location, depth int) {
		names = append(names, loc.Name)
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{
		"Hall de Entrada", "Sala de Estar", "Biblioteca", "Jardim",
		"Cozinha", "Quarto", "Adega",
	}, names)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 2}, depths)
}

func TestReleaseVisitsEveryRoomOncePostOrder(t *testing.T) {
	hall := buildManor(t)

	var all []*Location
	Walk(hall, func(loc *Location, _ int) { all = append(all, loc) })

	released := map[*Location]int{}
	var order []string
	n := Release(hall, func(loc *Location) {
		released[loc]++
		order = append(order, loc.Name)
	})

	assert.Equal(t, 7, n)
	for _, loc := range all {
		assert.Equal(t, 1, released[loc], "room %s", loc.Name)
		assert.True(t, loc.IsLeaf(), "room %s still links children", loc.Name)
	}
	assert.Equal(t, []string{
		"Biblioteca", "Jardim", "Sala de Estar",
		"Quarto", "Adega", "Cozinha",
		"Hall de Entrada",
	}, order)
}

func TestReleaseArbitraryShape(t *testing.T) {
	root := NewLocation("root", "")
	cur := root
	for i := 0; i < 50; i++ {
		next := NewLocation("deep", "")
		side := Left
		if i%2 == 1 {
			side = Right
		}
		require.NoError(t, Link(cur, side, next))
		cur = next
	}

	assert.Equal(t, 51, Release(root, nil))
	assert.Equal(t, 1, Count(root))
	assert.Equal(t, 0, Release(nil, nil))
}
