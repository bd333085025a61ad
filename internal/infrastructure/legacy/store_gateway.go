// Package legacy emula la integración con el gestor de tiendas legado:
// el efecto observable es la escritura de un archivo plano con los datos de
// la tienda. Es best effort por contrato: todo fallo se registra y se traga,
// nunca interrumpe la operación que ya fue confirmada en la BD.
package legacy

import (
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
	"github.com/jhoicas/fulfilment-api/internal/domain/entity"
	"github.com/jhoicas/fulfilment-api/pkg/logger"
)

var _ usecase.LegacyStoreNotifier = (*StoreManagerGateway)(nil)

// StoreManagerGateway escribe los cambios de tiendas en archivos temporales
// con el formato que espera el sistema legado.
type StoreManagerGateway struct {
	log *logger.Logger
	dir string // directorio destino; vacío = os.TempDir()
}

// NewStoreManagerGateway construye el gateway. dir vacío usa el temporal del SO.
func NewStoreManagerGateway(log *logger.Logger, dir string) *StoreManagerGateway {
	return &StoreManagerGateway{log: log, dir: dir}
}

// StoreCreated replica la creación de una tienda al sistema legado.
func (g *StoreManagerGateway) StoreCreated(store *entity.Store) {
	if err := g.writeToFile(store); err != nil {
		name := "<nil>"
		if store != nil {
			name = store.Name
		}
		g.log.Error().Err(err).Str("store", name).Msg("fallo al crear registro legado de tienda")
	}
}

// StoreUpdated replica la actualización de una tienda al sistema legado.
func (g *StoreManagerGateway) StoreUpdated(store *entity.Store) {
	if err := g.writeToFile(store); err != nil {
		name := "<nil>"
		if store != nil {
			name = store.Name
		}
		g.log.Error().Err(err).Str("store", name).Msg("fallo al actualizar registro legado de tienda")
	}
}

// writeToFile escribe el registro en un archivo temporal, lo relee para
// verificar y lo borra.
func (g *StoreManagerGateway) writeToFile(store *entity.Store) error {
	if store == nil {
		g.log.Warn().Msg("writeToFile llamado con tienda nil")
		return nil
	}

	// El prefijo del archivo temporal debe ser seguro para el filesystem.
	prefix := "store-" + safeName(store.Name)

	f, err := os.CreateTemp(g.dir, prefix+"-*.txt")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	path := f.Name()
	g.log.Debug().Str("path", path).Msg("archivo temporal legado creado")

	content := fmt.Sprintf("Store created. [ name = %s ] [ items on stock = %d ]",
		store.Name, store.QuantityProductsInStock)

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("escribir registro legado: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("cerrar archivo legado: %w", err)
	}

	read, err := os.ReadFile(path)
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("releer registro legado: %w", err)
	}
	g.log.Debug().Str("content", string(read)).Msg("registro legado verificado")

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("borrar archivo legado: %w", err)
	}
	return nil
}

// safeName sanea el nombre para usarlo como prefijo de archivo (mínimo 3 chars).
func safeName(name string) string {
	if name == "" {
		return "tmp"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	s := b.String()
	if len(s) > 10 {
		s = s[:10]
	}
	if len(s) < 3 {
		return "tmp"
	}
	return s
}
