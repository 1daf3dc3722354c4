package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/msp-alert-engine/internal/directory"
	dirMocks "github.com/donaldgifford/msp-alert-engine/internal/directory/mocks"
	storeMocks "github.com/donaldgifford/msp-alert-engine/internal/store/mocks"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

var (
	ana = domain.Recipient{Name: "Ana", Email: "ana@msp.example"}
	bo  = domain.Recipient{Name: "Bo", Phone: "+15550102"}
	cy  = domain.Recipient{Name: "Cy", RealtimeChannel: "noc"}
)

func TestStoreDirectory_Resolve(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListRoleMembers(mock.Anything, "acme", []string{"tech", "manager"}).Return([]domain.RoleMember{
		{Role: "tech", Name: "Ana", Email: "ana@msp.example"},
		{Role: "manager", Name: "Ana", Email: "ana@msp.example"},
		{Role: "manager", Name: "Bo", Phone: "+15550102"},
	}, nil)

	d := directory.NewStoreDirectory(ms)
	got, err := d.Resolve(context.Background(), "acme", []string{"tech", "manager"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Recipient{ana, bo}, got)
}

func TestStoreDirectory_NoRoles(t *testing.T) {
	t.Parallel()

	d := directory.NewStoreDirectory(storeMocks.NewMockStore(t))
	got, err := d.Resolve(context.Background(), "acme", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreDirectory_Error(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListRoleMembers(mock.Anything, "acme", []string{"tech"}).Return(nil, errors.New("db down"))

	_, err := directory.NewStoreDirectory(ms).Resolve(context.Background(), "acme", []string{"tech"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing role members")
}

func TestStatic_Resolve(t *testing.T) {
	t.Parallel()

	s := directory.NewStatic(map[string]map[string][]domain.Recipient{
		"acme":              {"tech": {ana}, "owner": {bo}},
		directory.AnyTenant: {"tech": {cy}, "owner": {bo}},
	})

	tests := []struct {
		name   string
		tenant string
		roles  []string
		want   []domain.Recipient
	}{
		{name: "tenant then wildcard", tenant: "acme", roles: []string{"tech"}, want: []domain.Recipient{ana, cy}},
		{name: "duplicates collapse", tenant: "acme", roles: []string{"owner"}, want: []domain.Recipient{bo}},
		{name: "other tenant gets wildcard only", tenant: "globex", roles: []string{"tech"}, want: []domain.Recipient{cy}},
		{name: "unknown role", tenant: "acme", roles: []string{"ceo"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := s.Resolve(context.Background(), tt.tenant, tt.roles)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChain_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	roles := []string{"tech"}

	t.Run("first non-empty wins", func(t *testing.T) {
		t.Parallel()
		first := dirMocks.NewMockDirectory(t)
		second := dirMocks.NewMockDirectory(t)
		first.EXPECT().Resolve(mock.Anything, "acme", roles).Return(nil, nil)
		second.EXPECT().Resolve(mock.Anything, "acme", roles).Return([]domain.Recipient{ana}, nil)

		got, err := directory.Chain{first, second}.Resolve(ctx, "acme", roles)
		require.NoError(t, err)
		assert.Equal(t, []domain.Recipient{ana}, got)
	})

	t.Run("error skipped when a later source answers", func(t *testing.T) {
		t.Parallel()
		broken := dirMocks.NewMockDirectory(t)
		static := directory.NewStatic(map[string]map[string][]domain.Recipient{"acme": {"tech": {bo}}})
		broken.EXPECT().Resolve(mock.Anything, "acme", roles).Return(nil, errors.New("db down"))

		got, err := directory.Chain{broken, static}.Resolve(ctx, "acme", roles)
		require.NoError(t, err)
		assert.Equal(t, []domain.Recipient{bo}, got)
	})

	t.Run("error surfaces when nobody answers", func(t *testing.T) {
		t.Parallel()
		broken := dirMocks.NewMockDirectory(t)
		broken.EXPECT().Resolve(mock.Anything, "acme", roles).Return(nil, errors.New("db down"))

		got, err := directory.Chain{broken, directory.NewStatic(nil)}.Resolve(ctx, "acme", roles)
		require.Error(t, err)
		assert.Empty(t, got)
	})
}
