package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/shopbot/internal/application/dto"
	"github.com/jhoicas/shopbot/internal/domain"
	"github.com/jhoicas/shopbot/internal/domain/entity"
	"github.com/jhoicas/shopbot/internal/domain/nlp"
	"github.com/jhoicas/shopbot/internal/domain/pricing"
	"github.com/jhoicas/shopbot/internal/domain/repository"
	"github.com/jhoicas/shopbot/pkg/logger"
)

// Textos de la conversación normal.
const (
	replyCategoryNotCarried     = "No manejamos la categoría '%s'. Te sugiero estas opciones:"
	replyCategoryNotCarriedAlt  = "No manejamos la categoría '%s'. Te dejo alternativas:"
	replyCategoryNotCarriedOnly = "No manejamos la categoría '%s'."
	replyBrandNotCarried        = "No tenemos la marca '%s'. Opciones recomendadas:"
	replyProductNotFound        = "No tenemos ese producto. Mira estas alternativas:"
	replyAdded                  = "Agregué %d x %s %s."
	replyRecommendation         = " Recomendación: %s %s."
	replyRemoved                = "Listo. Ajusté tu carrito."
	replyWhichToRemove          = "Indica qué producto quieres quitar."
	replyShowCart               = "Este es tu pedido actual."
	replyAskInvoice             = "¿Necesitas factura? sí o no."
	replyCheckoutAskInvoice     = "Vamos a cerrar. ¿Necesitas factura? sí/no."
	replyOptions                = "Te muestro opciones disponibles."
	replyDirectAdded            = "Perfecto. Agregué el producto al carrito."
	replyDirectNotSold          = "No encontré ese producto. En esta tienda no se vende."
)

// Config parámetros de negocio del asistente.
type Config struct {
	TaxRate         decimal.Decimal // IVA único, ej. 0.16
	SuggestionLimit int             // cuántas alternativas se ofrecen (3)
}

// DialogueUseCase orquesta cada mensaje: checkout si hay un cierre en curso; si no,
// intención -> categoría -> buscador/recomendador -> carrito -> respuesta.
// El estado de la conversación se carga y se guarda en cada llamada.
type DialogueUseCase struct {
	conversations repository.ConversationRepository
	catalog       repository.CatalogRepository
	classifier    *nlp.IntentClassifier
	detector      *nlp.CategoryDetector
	matcher       *ProductMatcher
	recommender   *Recommender
	checkout      *Checkout
	locks         *ConversationLocks
	cfg           Config
	log           *logger.Logger
}

// NewDialogueUseCase arma el orquestador con las tablas de reglas inyectadas.
func NewDialogueUseCase(
	conversations repository.ConversationRepository,
	catalog repository.CatalogRepository,
	tx OrderTxRunner,
	rules *nlp.Rules,
	cfg Config,
	log *logger.Logger,
) *DialogueUseCase {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = 3
	}
	if log == nil {
		log = logger.Nop()
	}
	matcher := NewProductMatcher(catalog, rules)
	return &DialogueUseCase{
		conversations: conversations,
		catalog:       catalog,
		classifier:    nlp.NewIntentClassifier(rules),
		detector:      nlp.NewCategoryDetector(rules),
		matcher:       matcher,
		recommender:   NewRecommender(catalog, matcher, rules),
		checkout:      NewCheckout(catalog, tx, rules, cfg.TaxRate),
		locks:         NewConversationLocks(),
		cfg:           cfg,
		log:           log,
	}
}

// Start crea una conversación nueva en su estado inicial.
func (uc *DialogueUseCase) Start(ctx context.Context) (*dto.ConversationResponse, error) {
	return uc.Reset(ctx, uuid.New().String())
}

// Reset reinicia la conversación id: etapa chat, carrito vacío, sin datos de cierre.
func (uc *DialogueUseCase) Reset(ctx context.Context, id string) (*dto.ConversationResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidInput
	}
	unlock := uc.locks.Lock(id)
	defer unlock()

	st := entity.NewConversationState(id)
	if err := uc.conversations.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("guardar conversación: %w", err)
	}
	uc.log.Debug().Str("conversation_id", id).Msg("conversación iniciada")
	return &dto.ConversationResponse{
		ConversationID: id,
		Stage:          string(st.Stage),
		Cart:           emptySnapshot(),
	}, nil
}

// HandleMessage procesa un mensaje libre del cliente.
// Solo devuelve error por fallas de persistencia; referencias desconocidas se
// responden con alternativas.
func (uc *DialogueUseCase) HandleMessage(ctx context.Context, conversationID, text string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, domain.ErrInvalidInput
	}
	unlock := uc.locks.Lock(conversationID)
	defer unlock()

	st, err := uc.load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	prevStage := st.Stage

	var out *dto.MessageResponse
	if st.Stage.InCheckout() {
		turn, err := uc.checkout.Advance(ctx, st, text)
		if err != nil {
			uc.log.Error().Err(err).
				Str("conversation_id", conversationID).
				Str("stage", string(st.Stage)).
				Msg("checkout falló")
			return nil, err
		}
		out = &dto.MessageResponse{Reply: turn.Reply}
		if turn.Order != nil {
			out.OrderID = turn.Order.ID
			uc.log.Info().
				Str("conversation_id", conversationID).
				Str("order_id", turn.Order.ID).
				Str("total", turn.Order.Total.StringFixed(2)).
				Msg("pedido registrado")
		}
	} else {
		out, err = uc.chatTurn(ctx, st, text)
		if err != nil {
			return nil, err
		}
	}

	if st.Stage != prevStage {
		uc.log.Debug().
			Str("conversation_id", conversationID).
			Str("from", string(prevStage)).
			Str("to", string(st.Stage)).
			Msg("cambio de etapa")
	}
	if err := uc.save(ctx, st); err != nil {
		return nil, err
	}
	out.Stage = string(st.Stage)
	if out.Cart, err = uc.snapshot(ctx, st.Cart); err != nil {
		return nil, err
	}
	return out, nil
}

// AddBySKU agrega qty unidades (mínimo 1) del SKU. Un SKU desconocido no es error:
// la respuesta indica que no se vende.
func (uc *DialogueUseCase) AddBySKU(ctx context.Context, conversationID, sku string, qty int) (*dto.AddProductResponse, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, domain.ErrInvalidInput
	}
	unlock := uc.locks.Lock(conversationID)
	defer unlock()

	st, err := uc.load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	reply := replyDirectNotSold
	sku = strings.TrimSpace(sku)
	if sku != "" {
		p, err := uc.catalog.GetBySKU(ctx, sku)
		if err != nil {
			return nil, fmt.Errorf("leer producto: %w", err)
		}
		if p != nil {
			st.Cart.Add(p.SKU, qty)
			if err := uc.save(ctx, st); err != nil {
				return nil, err
			}
			reply = replyDirectAdded
		}
	}
	cart, err := uc.snapshot(ctx, st.Cart)
	if err != nil {
		return nil, err
	}
	return &dto.AddProductResponse{Reply: reply, Cart: cart}, nil
}

// Cart devuelve la foto del carrito de la conversación.
func (uc *DialogueUseCase) Cart(ctx context.Context, conversationID string) (*dto.CartSnapshot, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, domain.ErrInvalidInput
	}
	st, err := uc.load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	snap, err := uc.snapshot(ctx, st.Cart)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// chatTurn turno fuera del checkout.
func (uc *DialogueUseCase) chatTurn(ctx context.Context, st *entity.ConversationState, text string) (*dto.MessageResponse, error) {
	intent := uc.classifier.Classify(text)
	category, hasCategory := uc.detector.Detect(text)
	carried := false
	if hasCategory {
		var err error
		if carried, err = uc.catalog.CategoryExists(ctx, category); err != nil {
			return nil, fmt.Errorf("verificar categoría: %w", err)
		}
	}
	// categoría vigente para filtrar: solo si se detectó y se vende
	filter := ""
	if hasCategory && carried {
		filter = category
	}

	switch intent {
	case nlp.IntentAdd:
		return uc.addTurn(ctx, st, text, category, hasCategory, carried)

	case nlp.IntentRemove:
		if hasCategory && !carried {
			return &dto.MessageResponse{Reply: fmt.Sprintf(replyCategoryNotCarriedOnly, category)}, nil
		}
		products, err := uc.matcher.Find(ctx, text, filter)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			return &dto.MessageResponse{Reply: replyWhichToRemove}, nil
		}
		// se prefiere lo que sí está en el carrito
		target := BestMatch(inCart(products, st.Cart))
		if target == nil {
			target = BestMatch(products)
		}
		st.Cart.Remove(target.SKU)
		return &dto.MessageResponse{Reply: replyRemoved}, nil

	case nlp.IntentShowCart:
		return &dto.MessageResponse{Reply: replyShowCart}, nil

	case nlp.IntentInvoice:
		st.Stage = entity.StageAskInvoice
		return &dto.MessageResponse{Reply: replyAskInvoice}, nil

	case nlp.IntentCheckout:
		st.Stage = entity.StageAskInvoice
		return &dto.MessageResponse{Reply: replyCheckoutAskInvoice}, nil
	}

	// pay fuera del checkout y unknown
	if hasCategory && !carried {
		return uc.suggest(ctx, fmt.Sprintf(replyCategoryNotCarriedAlt, category), "")
	}
	return uc.suggest(ctx, replyOptions, filter)
}

func (uc *DialogueUseCase) addTurn(ctx context.Context, st *entity.ConversationState, text, category string, hasCategory, carried bool) (*dto.MessageResponse, error) {
	qty := nlp.ExtractQuantity(text)

	if hasCategory && !carried {
		return uc.suggest(ctx, fmt.Sprintf(replyCategoryNotCarried, category), "")
	}
	filter := ""
	if hasCategory {
		filter = category
	}

	brands, err := uc.catalog.Brands(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer marcas: %w", err)
	}
	if brand, ok := nlp.DetectBrand(text, brands); ok && !nlp.IsKnownBrand(brand, brands) {
		return uc.suggest(ctx, fmt.Sprintf(replyBrandNotCarried, brand), filter)
	}

	products, err := uc.matcher.Find(ctx, text, filter)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return uc.suggest(ctx, replyProductNotFound, filter)
	}

	best := BestMatch(products)
	st.Cart.Add(best.SKU, qty)

	reply := fmt.Sprintf(replyAdded, qty, best.Name, best.Brand)
	out := &dto.MessageResponse{}
	comp, err := uc.recommender.Complement(ctx, best, filter, text)
	if err != nil {
		return nil, err
	}
	if comp != nil {
		reply += fmt.Sprintf(replyRecommendation, comp.Name, comp.Brand)
		out.Suggestions = toSuggestions([]*entity.Product{comp})
	}
	out.Reply = reply
	return out, nil
}

// suggest responde con las mejores alternativas por margen (de la categoría si se indica).
func (uc *DialogueUseCase) suggest(ctx context.Context, reply, category string) (*dto.MessageResponse, error) {
	top, err := uc.recommender.TopByMargin(ctx, uc.cfg.SuggestionLimit, category)
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Reply: reply, Suggestions: toSuggestions(top)}, nil
}

func (uc *DialogueUseCase) load(ctx context.Context, id string) (*entity.ConversationState, error) {
	st, err := uc.conversations.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leer conversación: %w", err)
	}
	if st == nil {
		st = entity.NewConversationState(id)
	}
	if st.Cart == nil {
		st.Cart = entity.Cart{}
	}
	return st, nil
}

func (uc *DialogueUseCase) save(ctx context.Context, st *entity.ConversationState) error {
	st.UpdatedAt = time.Now()
	if err := uc.conversations.Save(ctx, st); err != nil {
		return fmt.Errorf("guardar conversación: %w", err)
	}
	return nil
}

// snapshot arma la foto del carrito con precios vigentes. SKUs que ya no están en
// el catálogo se omiten de la foto.
func (uc *DialogueUseCase) snapshot(ctx context.Context, cart entity.Cart) (dto.CartSnapshot, error) {
	lines := make([]dto.CartLineResponse, 0, len(cart))
	subtotal := decimal.Zero
	for _, sku := range cart.SKUs() {
		p, err := uc.catalog.GetBySKU(ctx, sku)
		if err != nil {
			return dto.CartSnapshot{}, fmt.Errorf("leer producto %s: %w", sku, err)
		}
		if p == nil {
			continue
		}
		qty := cart[sku]
		lineTotal := pricing.LineTotal(p.Price, qty)
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, dto.CartLineResponse{
			SKU:       p.SKU,
			Name:      p.Name,
			Brand:     p.Brand,
			Quantity:  qty,
			UnitPrice: p.Price,
			LineTotal: lineTotal,
		})
	}
	totals := pricing.CalculateTotals(subtotal, uc.cfg.TaxRate)
	return dto.CartSnapshot{
		Lines:    lines,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}, nil
}

func emptySnapshot() dto.CartSnapshot {
	return dto.CartSnapshot{
		Lines:    []dto.CartLineResponse{},
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
	}
}

func inCart(products []*entity.Product, cart entity.Cart) []*entity.Product {
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if _, ok := cart[p.SKU]; ok {
			out = append(out, p)
		}
	}
	return out
}

func toSuggestions(list []*entity.Product) []dto.Suggestion {
	out := make([]dto.Suggestion, 0, len(list))
	for _, p := range list {
		out = append(out, dto.Suggestion{SKU: p.SKU, Text: p.DisplayText()})
	}
	return out
}
