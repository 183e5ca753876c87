package reporting

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cajanegocio/caja-api/infrastructure/integrator/caja"
	"github.com/cajanegocio/caja-api/infrastructure/repository"
	"github.com/cajanegocio/caja-api/internal/config"
	"github.com/cajanegocio/caja-api/internal/domain"
)

// resultadoCacheado conserva en memoria el último agregado aplicado de un
// pipeline. seq es el número de secuencia de la consulta que lo produjo:
// solo la respuesta de la consulta más reciente se aplica, una respuesta
// en vuelo superada se descarta al llegar. Con el backend caído, el valor
// aplicado del mismo período se sirve como último resultado conocido.
type resultadoCacheado struct {
	seq        uint64
	clave      string
	generadoEn time.Time
	valor      interface{}
}

// Service implementa Reporter sobre el integrador del backend de caja.
// Cada pipeline es dueño de su propio conjunto de datos: nunca comparten
// estado mutable entre sí.
type Service struct {
	cfg        *config.Config
	integrador caja.MovementsIntegrator

	resumenRepo repository.ResumenGraficoRepository
	useCache    bool

	seqSerie        atomic.Uint64
	seqDistribucion atomic.Uint64
	seqRanking      atomic.Uint64

	mu                 sync.Mutex
	ultimaSerie        *resultadoCacheado
	ultimaDistribucion *resultadoCacheado
	ultimoRanking      *resultadoCacheado
}

// NewService crea el servicio de reportes del dashboard
func NewService(cfg *config.Config, integrador caja.MovementsIntegrator) Reporter {
	return &Service{
		cfg:        cfg,
		integrador: integrador,
	}
}

// WithCache habilita la cache de instantáneas: con el backend caído, el
// dashboard sirve la última instantánea persistida en lugar de fallar
func (s *Service) WithCache(resumenRepo repository.ResumenGraficoRepository) *Service {
	s.resumenRepo = resumenRepo
	s.useCache = resumenRepo != nil
	return s
}

// SerieCostos trae las salidas del período y las pliega en la serie por
// tipo de costo. Ante timeout del backend devuelve la serie de muestra.
func (s *Service) SerieCostos(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time) (*domain.SerieCostos, error) {
	rango, err := domain.NuevoRangoPeriodo(tipo, referencia)
	if err != nil {
		return nil, err
	}

	clave := claveDePeriodo(rango)
	seq := s.seqSerie.Add(1)

	movimientos, err := s.traerSalidas(ctx, token, rango)
	if err != nil {
		if caja.EsTiempoAgotado(err) {
			logrus.WithField("periodo", tipo).Warn("Timeout del backend de caja, sirviendo serie de muestra")
			return SerieDeMuestra(rango), nil
		}
		if caja.EsErrorDeComunicacion(err) {
			if previa, ok := s.ultimoAplicado(&s.ultimaSerie, clave).(*domain.SerieCostos); ok {
				logrus.WithField("periodo", tipo).Warn("Backend de caja caído, sirviendo la última serie aplicada")
				copia := *previa
				copia.DesdeCache = true
				return &copia, nil
			}
		}
		return nil, err
	}

	serie := AgregarSerieCostos(rango, movimientos)
	s.aplicarUltimo(&s.ultimaSerie, clave, seq, serie)

	return serie, nil
}

// Distribucion trae las salidas del período y calcula ambos rollups
func (s *Service) Distribucion(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time) (*domain.Distribucion, error) {
	rango, err := domain.NuevoRangoPeriodo(tipo, referencia)
	if err != nil {
		return nil, err
	}

	clave := claveDePeriodo(rango)
	seq := s.seqDistribucion.Add(1)

	movimientos, err := s.traerSalidas(ctx, token, rango)
	if err != nil {
		if caja.EsTiempoAgotado(err) {
			logrus.WithField("periodo", tipo).Warn("Timeout del backend de caja, sirviendo distribución de muestra")
			return DistribucionDeMuestra(rango), nil
		}
		if caja.EsErrorDeComunicacion(err) {
			if previa, ok := s.ultimoAplicado(&s.ultimaDistribucion, clave).(*domain.Distribucion); ok {
				logrus.WithField("periodo", tipo).Warn("Backend de caja caído, sirviendo la última distribución aplicada")
				copia := *previa
				copia.DesdeCache = true
				return &copia, nil
			}
		}
		return nil, err
	}

	distribucion := AgregarDistribucion(rango, movimientos)
	s.aplicarUltimo(&s.ultimaDistribucion, clave, seq, distribucion)

	return distribucion, nil
}

// Ranking trae las salidas del período y arma el ranking por descripción
func (s *Service) Ranking(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time, opciones domain.OpcionesRanking) (*domain.Ranking, error) {
	rango, err := domain.NuevoRangoPeriodo(tipo, referencia)
	if err != nil {
		return nil, err
	}

	clave := claveDeRanking(rango, opciones)
	seq := s.seqRanking.Add(1)

	movimientos, err := s.traerSalidas(ctx, token, rango)
	if err != nil {
		if caja.EsTiempoAgotado(err) {
			logrus.WithField("periodo", tipo).Warn("Timeout del backend de caja, sirviendo ranking de muestra")
			return RankingDeMuestra(rango, opciones), nil
		}
		if caja.EsErrorDeComunicacion(err) {
			if previo, ok := s.ultimoAplicado(&s.ultimoRanking, clave).(*domain.Ranking); ok {
				logrus.WithField("periodo", tipo).Warn("Backend de caja caído, sirviendo el último ranking aplicado")
				copia := *previo
				copia.DesdeCache = true
				return &copia, nil
			}
		}
		return nil, err
	}

	ranking := AgregarRanking(rango, movimientos, opciones)
	s.aplicarUltimo(&s.ultimoRanking, clave, seq, ranking)

	return ranking, nil
}

// Dashboard ejecuta los tres pipelines en paralelo, cada uno con su propia
// consulta al backend. Si el backend está caído y hay una instantánea
// persistida del período, se sirve esa en su lugar.
func (s *Service) Dashboard(ctx context.Context, token string, tipo domain.TipoPeriodo, referencia time.Time) (*domain.Dashboard, error) {
	rango, err := domain.NuevoRangoPeriodo(tipo, referencia)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		Periodo:    infoPeriodo(rango),
		GeneradoEn: time.Now(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		serie, err := s.SerieCostos(gctx, token, tipo, referencia)
		if err != nil {
			return err
		}
		dashboard.Serie = serie
		return nil
	})

	g.Go(func() error {
		distribucion, err := s.Distribucion(gctx, token, tipo, referencia)
		if err != nil {
			return err
		}
		dashboard.Distribucion = distribucion
		return nil
	})

	g.Go(func() error {
		ranking, err := s.Ranking(gctx, token, tipo, referencia, domain.OpcionesRanking{
			OrdenarPor:  domain.OrdenPorTotal,
			Descendente: true,
			Limite:      10,
		})
		if err != nil {
			return err
		}
		dashboard.Ranking = ranking
		return nil
	})

	if err := g.Wait(); err != nil {
		// Los errores de autenticación siempre se propagan: el cliente
		// tiene que volver a iniciar sesión, no ver datos viejos
		if caja.EsErrorDeAutenticacion(err) {
			return nil, err
		}

		if s.useCache {
			if instantanea := s.buscarInstantanea(tipo, referencia); instantanea != nil {
				logrus.WithField("periodo", tipo).Warn("Backend de caja caído, sirviendo instantánea persistida")
				return instantanea, nil
			}
		}

		return nil, err
	}

	return dashboard, nil
}

// traerSalidas consulta al backend los movimientos de salida del rango.
// A lo sumo una consulta por invocación; la política de reintento queda
// del lado del cliente del dashboard.
func (s *Service) traerSalidas(ctx context.Context, token string, rango *domain.RangoPeriodo) ([]*domain.Movimiento, error) {
	salida := domain.MovimientoSalida
	return s.integrador.ListarMovimientos(ctx, token, domain.FiltroMovimientos{
		Tipo:  &salida,
		Desde: rango.Inicio,
		Hasta: rango.Fin,
	})
}

// aplicarUltimo guarda un resultado solo si pertenece a la consulta más
// reciente del pipeline: el último gana, una respuesta superada se ignora
func (s *Service) aplicarUltimo(destino **resultadoCacheado, clave string, seq uint64, valor interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if *destino != nil && (*destino).seq > seq {
		logrus.WithFields(logrus.Fields{
			"seq_respuesta": seq,
			"seq_aplicada":  (*destino).seq,
		}).Debug("Respuesta en vuelo superada por una consulta más nueva, se descarta")
		return
	}

	*destino = &resultadoCacheado{
		seq:        seq,
		clave:      clave,
		generadoEn: time.Now(),
		valor:      valor,
	}
}

// ultimoAplicado devuelve el último resultado aplicado del pipeline si
// corresponde al mismo período consultado, o nil si no hay uno comparable
func (s *Service) ultimoAplicado(destino **resultadoCacheado, clave string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if *destino == nil || (*destino).clave != clave {
		return nil
	}
	return (*destino).valor
}

// claveDePeriodo identifica el rango agregado para comparar resultados
func claveDePeriodo(rango *domain.RangoPeriodo) string {
	return fmt.Sprintf("%s|%s|%s", rango.Tipo, rango.Inicio.Format(time.RFC3339), rango.Fin.Format(time.RFC3339))
}

// claveDeRanking incluye las opciones porque cambian el resultado
func claveDeRanking(rango *domain.RangoPeriodo, opciones domain.OpcionesRanking) string {
	return fmt.Sprintf("%s|%s|%t|%d", claveDePeriodo(rango), opciones.OrdenarPor, opciones.Descendente, opciones.Limite)
}

// buscarInstantanea intenta recuperar la instantánea persistida del período
func (s *Service) buscarInstantanea(tipo domain.TipoPeriodo, referencia time.Time) *domain.Dashboard {
	resumen, err := s.resumenRepo.GetByPeriodoAndFecha(tipo, referencia)
	if err != nil {
		logrus.WithError(err).Error("Error al buscar la instantánea del dashboard")
		return nil
	}

	if resumen == nil || resumen.Dashboard == nil {
		return nil
	}

	dashboard := resumen.Dashboard
	dashboard.DesdeCache = true
	return dashboard
}
