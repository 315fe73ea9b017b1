package catalog

import "github.com/gdhispano/hub/internal/model"

// seedMethods はディレクトリに掲載する収益メソッドの初期データ。
// プレミアムメソッドのContentは資格確認後にのみ配信される。
var seedMethods = []model.Method{
	{
		ID:                 "1",
		Name:               "UserTesting",
		Category:           model.CategoryTasks,
		Description:        "Prueba sitios web y apps grabando tu pantalla y voz. Pagos fiables por PayPal. Ideal para principiantes.",
		Verified:           true,
		InvestmentRequired: false,
		Difficulty:         model.DifficultyBeginner,
		Rating:             4.8,
		PotentialEarnings:  "$10 - $50 / test",
		Link:               "https://www.usertesting.com/be-a-tester",
		Content: `
      <h3>¿Qué es UserTesting?</h3>
      <p>Es la plataforma líder mundial en pruebas de usabilidad. Empresas como HP, Samsung, y Adobe pagan por ver a personas reales intentando usar sus sitios web y aplicaciones para encontrar errores o confusiones.</p>

      <h3>Requisitos Técnicos</h3>
      <ul>
        <li>PC o Mac con conexión a internet estable.</li>
        <li>Un micrófono decente (el de los auriculares del móvil suele servir).</li>
        <li>Cuenta de PayPal (imprescindible para cobrar).</li>
        <li>Ser mayor de 18 años.</li>
      </ul>

      <h3>Estrategia para ser Aceptado (La clave)</h3>
      <p>El 80% de la gente es rechazada en el test de prueba. Aquí tienes el secreto para pasar:</p>
      <p>El sistema busca personas que practiquen el <strong>"Think Aloud Protocol" (Pensar en voz alta)</strong>. No te calles ni un segundo.</p>

      <div class="bg-surface p-4 rounded-lg border border-white/10 my-4">
        <strong>Ejemplo INCORRECTO:</strong> (Clickeas en silencio buscando el menú de contacto).<br/><br/>
        <strong>Ejemplo CORRECTO:</strong> "Vale, estoy buscando la página de contacto. Voy a mirar en el menú superior... no la veo aquí. Quizás esté en el pie de página... ah, sí, aquí está 'Help Center', voy a hacer clic aquí porque asumo que tendrán un formulario."
      </div>

      <h3>Paso a Paso</h3>
      <ol>
        <li>Regístrate en <a href="https://www.usertesting.com/be-a-tester" target="_blank" class="text-neonGreen underline">UserTesting</a>.</li>
        <li>Realiza el test de práctica aplicando la técnica de "Pensar en voz alta".</li>
        <li>Una vez aprobado, mantén la pestaña abierta. Los tests "vuelan".</li>
        <li>Realiza tests de $10 (toman unos 15-20 minutos).</li>
        <li>Cobra exactamente 7 días después de completar el test en tu PayPal.</li>
      </ol>
    `,
	},
	{
		ID:                 "2",
		Name:               "Binance Earn",
		Category:           model.CategoryCrypto,
		Description:        "Staking flexible y ahorros en criptomonedas. Gana intereses pasivos de tus tenencias actuales.",
		Verified:           true,
		InvestmentRequired: true,
		Difficulty:         model.DifficultyIntermediate,
		Rating:             4.5,
		PotentialEarnings:  "3% - 15% APY",
		Content: `
      <h3>Generar Ingresos Pasivos con Cripto (Riesgo Bajo)</h3>
      <p>Binance Earn funciona como una cuenta de ahorros bancaria, pero con criptomonedas. En lugar de tener tus monedas paradas en la billetera, las prestas al exchange a cambio de un interés anual (APY).</p>

      <h3>La Estrategia Segura: USDT Flexible</h3>
      <p>Si no quieres exponerte a la volatilidad de Bitcoin o Ethereum, puedes usar "Stablecoins" (monedas pegadas al valor del dólar).</p>
      <ul>
        <li><strong>Moneda:</strong> USDT (Tether) o USDC.</li>
        <li><strong>Riesgo:</strong> Muy bajo (salvo colapso sistémico del dólar o Tether).</li>
        <li><strong>Retorno:</strong> Suele oscilar entre el 5% y el 15% anual en promociones.</li>
      </ul>

      <h3>Paso a Paso</h3>
      <ol>
        <li>Crea una cuenta en Binance y verifica tu identidad (KYC).</li>
        <li>Deposita Euros/Dólares o compra USDT mediante P2P.</li>
        <li>Ve a la sección <strong>"Earn" > "Simple Earn"</strong>.</li>
        <li>Busca USDT y selecciona la opción <strong>"Flexible"</strong> (puedes retirar el dinero cuando quieras).</li>
        <li>Activa la opción "Auto-Subscribe" para que los intereses generados se reinviertan automáticamente (Interés Compuesto).</li>
      </ol>

      <div class="bg-danger/10 p-4 rounded-lg border border-danger/30 my-4 text-sm">
        <strong>Advertencia:</strong> Evita productos de "Dual Investment" si eres principiante, ya que tienen riesgo de pérdida si el mercado se mueve en tu contra. Quédate en "Simple Earn".
      </div>
    `,
	},
	{
		ID:                 "5",
		Name:               "Google Rewards",
		Category:           model.CategorySurveys,
		Description:        "Encuestas muy cortas oficiales de Google. Paga en saldo de Play Store para apps y juegos.",
		Verified:           true,
		InvestmentRequired: false,
		Difficulty:         model.DifficultyBeginner,
		Rating:             4.0,
		PotentialEarnings:  "$5 - $10 / mes",
		Content: `
      <h3>Dinero por tu Historial de Ubicaciones</h3>
      <p>Google Opinion Rewards es la única app de encuestas que recomendamos al 100% porque paga siempre y no te expulsa a mitad de la encuesta. Google te paga por validar que has estado en ciertos comercios.</p>

      <h3>Truco para recibir más encuestas</h3>
      <p>Mucha gente se queja de que no le llegan encuestas. Esto es porque no se mueven o tienen la configuración mal.</p>
      <ol>
        <li><strong>Activa el GPS:</strong> Google necesita saber que has visitado el Mercadona, la gasolinera o el hotel.</li>
        <li><strong>Sé honesto:</strong> Google a veces envía "preguntas trampa" sobre sitios que NO existen o que no has visitado. Si mientes, dejarán de enviarte encuestas.</li>
        <li><strong>Responde rápido:</strong> Las encuestas caducan en 24 horas.</li>
        <li><strong>Abre la app:</strong> Ábrela una vez al día aunque no tengas notificaciones para forzar la sincronización.</li>
      </ol>

      <h3>¿Para qué sirve el saldo?</h3>
      <p>No se puede retirar a PayPal (salvo en iOS a veces). Sirve para:</p>
      <ul>
        <li>Comprar versiones PRO de apps.</li>
        <li>Pagar suscripciones de YouTube Premium o Google One.</li>
        <li>Comprar monedas en juegos (Robux, Brawl Stars, etc).</li>
      </ul>
    `,
	},
	{
		ID:                 "pro-1",
		Name:               "Arbitraje Cripto P2P",
		Category:           model.CategoryCrypto,
		Description:        "Estrategia avanzada para comprar barato y vender caro en mercados P2P. Incluye lista de pares y spreads.",
		Verified:           true,
		InvestmentRequired: true,
		Difficulty:         model.DifficultyAdvanced,
		Rating:             5.0,
		IsPremium:          true,
		PotentialEarnings:  "$50 - $200 / día",
		Content: `
      <h3>El Spread P2P</h3>
      <p>El arbitraje P2P consiste en comprar USDT a un precio en el mercado P2P y venderlo inmediatamente a un precio mayor, capturando el diferencial (spread) entre métodos de pago.</p>
      <ol>
        <li>Identifica pares con spread superior al 2% (fiat local vs USDT).</li>
        <li>Usa cuentas verificadas con historial para acceder a anuncios premium.</li>
        <li>Rota entre métodos de pago con distinta liquidez.</li>
      </ol>
    `,
	},
	{
		ID:                 "pro-2",
		Name:               "Appointment Setting",
		Category:           model.CategoryHighTicket,
		Description:        "Conviértete en un setter para infoproductores. Agenda llamadas y gana comisiones del 5-10% por venta cerrada.",
		Verified:           true,
		InvestmentRequired: false,
		Difficulty:         model.DifficultyIntermediate,
		Rating:             4.9,
		IsPremium:          true,
		PotentialEarnings:  "$1500 - $3000 / mes",
		Content: `
      <h3>Qué hace un Setter</h3>
      <p>Un appointment setter filtra leads y agenda llamadas de venta para closers de infoproductos. Cobra una base más comisión del 5-10% por venta cerrada.</p>
      <ol>
        <li>Elige un nicho con tickets de $2,000 o más.</li>
        <li>Construye un guion de calificación de leads.</li>
        <li>Contacta infoproductores ofreciendo una semana de prueba.</li>
      </ol>
    `,
	},
	{
		ID:                 "pro-3",
		Name:               "Amazon FBA Private Label",
		Category:           model.CategoryEcommerce,
		Description:        "Crea tu propia marca de productos e impórtalos para vender con la logística de Amazon. Guía completa de proveedores.",
		Verified:           true,
		InvestmentRequired: true,
		Difficulty:         model.DifficultyExpert,
		Rating:             4.7,
		IsPremium:          true,
		PotentialEarnings:  "$2000+ / mes (Escalable)",
		Content: `
      <h3>Private Label en 4 Fases</h3>
      <ol>
        <li><strong>Research:</strong> Encuentra productos con demanda estable y competencia débil.</li>
        <li><strong>Sourcing:</strong> Negocia con proveedores verificados y pide muestras.</li>
        <li><strong>Lanzamiento:</strong> Optimiza el listing y usa PPC agresivo la primera semana.</li>
        <li><strong>Escala:</strong> Reinvierte márgenes en variantes del producto ganador.</li>
      </ol>
    `,
	},
	{
		ID:                 "pro-4",
		Name:               "Airdrop Farming Automático",
		Category:           model.CategoryCrypto,
		Description:        "Scripts y rutas para farmear airdrops en nuevas blockchains (ZkSync, LayerZero) maximizando probabilidad de elegibilidad.",
		Verified:           true,
		InvestmentRequired: true,
		Difficulty:         model.DifficultyAdvanced,
		Rating:             4.8,
		IsPremium:          true,
		PotentialEarnings:  "$5000+ (Evento único)",
		Content: `
      <h3>Rutas de Elegibilidad</h3>
      <p>Los protocolos premian wallets con actividad orgánica sostenida. La clave es volumen distribuido en el tiempo, no transacciones masivas en un día.</p>
      <ul>
        <li>Interactúa con 5-10 protocolos distintos por red.</li>
        <li>Espacia las transacciones semanas entre sí para evitar filtros Sybil.</li>
        <li>Mantén saldo residual en cada red.</li>
      </ul>
    `,
	},
}

// seedScams は詐欺/正当性監査データベースの初期データ。
var seedScams = []model.ScamEntry{
	{ID: "s1", Name: "OmegaPro", Type: "Ponzi Scheme", RiskLevel: model.RiskCritical, Status: model.ScamStatusScam, Reason: "Colapso financiero global. Fondos congelados indefinidamente. Usaban un falso algoritmo de trading.", DateReported: "2022"},
	{ID: "s2", Name: "GoArbit", Type: "Ponzi Crypto", RiskLevel: model.RiskCritical, Status: model.ScamStatusScam, Reason: "Token interno (Square Token) sin liquidez real. Rentabilidades imposibles (200% ROI).", DateReported: "2023"},
	{ID: "s3", Name: "Validus", Type: "MLM", RiskLevel: model.RiskCritical, Status: model.ScamStatusScam, Reason: "Esquema piramidal sin producto real. La \"academia\" era una fachada para captar capital.", DateReported: "2023"},
	{ID: "s4", Name: "Quantum Leap", Type: "Ponzi", RiskLevel: model.RiskCritical, Status: model.ScamStatusScam, Reason: "CEO desaparecido con fondos de usuarios. Prometían arbitraje cuántico inexistente.", DateReported: "2024"},
	{ID: "s5", Name: "Ganancias Deportivas", Type: "Betting Ponzi", RiskLevel: model.RiskCritical, Status: model.ScamStatusScam, Reason: "No hacían apuestas reales. Pagaban con dinero de nuevos entrantes (Esquema Ponzi de libro).", DateReported: "2022"},
	{ID: "s6", Name: "FTX", Type: "Exchange", RiskLevel: model.RiskCritical, Status: model.ScamStatusScam, Reason: "Fraude corporativo masivo y malversación de fondos de clientes por Sam Bankman-Fried.", DateReported: "2022"},
	{ID: "s7", Name: "Amz-Orders-Bot", Type: "Phishing", RiskLevel: model.RiskHigh, Status: model.ScamStatusScam, Reason: "Suplantación de identidad de Amazon. Piden depósito previo en USDT para \"liberar pedidos\".", DateReported: "2024"},
	{ID: "s8", Name: "Task-Shein-VIP", Type: "Task Scam", RiskLevel: model.RiskHigh, Status: model.ScamStatusScam, Reason: "Estafa de tareas falsas. Te dejan retirar $2 y luego te exigen depositar $100 para seguir.", DateReported: "2024"},
	{ID: "w1", Name: "Venta de Reseñas (Maps)", Type: "Marketing Grey Hat", RiskLevel: model.RiskWarning, Status: model.ScamStatusWarning, Reason: "Negocio rentable de gestión de reputación. Google puede borrar reseñas, pero pagan bien por la acción.", DateReported: "Active"},
	{ID: "w2", Name: "Farming de Cuentas (Gmail)", Type: "Asset Creation", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Creación masiva de cuentas para proveedores. Alta demanda en foros blackhat para automatización.", DateReported: "Active"},
	{ID: "w3", Name: "Airdrop Hunter Scripts", Type: "Crypto Automation", RiskLevel: model.RiskWarning, Status: model.ScamStatusLegit, Reason: "Uso de bots para calificar en airdrops. Riesgo de baneo de wallet (Sybil), pero alta recompensa si se hace bien.", DateReported: "Active"},
	{ID: "w4", Name: "Social Media Boosting", Type: "SMM Services", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Venta de likes/follows. Mercado enorme y pagos rápidos. No es ilegal, pero infringe TOS de redes.", DateReported: "Active"},
	{ID: "l1", Name: "Binance", Type: "Exchange", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Exchange Tier 1 con Proof of Reserves auditada. Plataforma segura para operar.", DateReported: "Verified"},
	{ID: "l2", Name: "Upwork", Type: "Freelance", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Plataforma segura con Escrow para pagos. Si trabajas, cobras seguro.", DateReported: "Verified"},
	{ID: "l3", Name: "Fiverr", Type: "Freelance", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Mercado de servicios fiable. Protección al vendedor y comprador.", DateReported: "Verified"},
	{ID: "l4", Name: "Coinbase", Type: "Exchange", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Empresa pública listada en NASDAQ. Máxima regulación en USA.", DateReported: "Verified"},
	{ID: "l5", Name: "UserTesting", Type: "Usability", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Paga por grabar pantalla. Empresa sólida que trabaja con marcas Fortune 500.", DateReported: "Verified"},
	{ID: "l6", Name: "Notion Templates", Type: "Digital Products", RiskLevel: model.RiskSafe, Status: model.ScamStatusLegit, Reason: "Venta de plantillas digitales. Ingreso pasivo real y escalable.", DateReported: "Verified"},
}

// seedPosts はブログ記事の初期データ。
var seedPosts = []model.BlogPost{
	{
		ID:       "1",
		Title:    "Guía Oficial: Gana tus primeros Robux o Saldo con Reseñas",
		Excerpt:  "El paso a paso definitivo para participar en la campaña de Google Maps de GDH sin cometer errores.",
		Category: "Tutorial GDH",
		ReadTime: "4 min",
		Date:     "Actualizado Hoy",
		ImageURL: "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?auto=format&fit=crop&q=80&w=800",
		Content: `
      <h2>Introducción</h2>
      <p>Las reseñas en Google Maps son vitales para los negocios locales. En GDH conectamos negocios que necesitan mejorar su reputación con usuarios dispuestos a escribir reseñas honestas y de calidad.</p>

      <h3>¿Cuánto se paga?</h3>
      <p>El pago estándar por reseña verificada y publicada es de:</p>
      <ul>
        <li><strong>Opción A:</strong> $0.50 - $1.00 USD vía PayPal/Binance.</li>
        <li><strong>Opción B:</strong> 50 - 100 Robux (cubrimos tasas).</li>
        <li><strong>Opción C:</strong> 1 Mes de Discord Nitro (pack de 5 reseñas).</li>
      </ul>

      <h3>Reglas de Oro (Para no ser baneado)</h3>
      <ol>
        <li><strong>No copiar y pegar:</strong> Google detecta textos duplicados. Tu reseña debe ser única.</li>
        <li><strong>Simular naturalidad:</strong> Busca el negocio en Google Maps, navega por las fotos unos segundos antes de escribir. No entres con enlace directo y escribas en 5 segundos.</li>
        <li><strong>Perfil con foto:</strong> Los perfiles de Google sin foto de perfil suelen ser filtrados como spam.</li>
      </ol>

      <h3>Cómo empezar</h3>
      <p>Únete a nuestro Discord y busca el canal <strong>#tareas-disponibles</strong>. Abre un ticket para solicitar tu primera asignación.</p>
    `,
	},
	{
		ID:       "2",
		Title:    "Cómo detectar estafas en Telegram y Discord (Guía Auditoría)",
		Excerpt:  "Los métodos más sofisticados que usan los estafadores en 2024 y cómo detectarlos al instante.",
		Category: "Ciberseguridad",
		ReadTime: "10 min",
		Date:     "10 Oct 2023",
		ImageURL: "https://images.unsplash.com/photo-1563986768609-322da13575f3?auto=format&fit=crop&q=80&w=800",
		Content: `
      <h2>El Triángulo del Fraude</h2>
      <p>Todas las estafas financieras online, desde Ponzis cripto hasta falsos gurús, se basan en tres pilares psicológicos. Si aprendes a identificarlos, serás inmune.</p>

      <div class="grid grid-cols-1 md:grid-cols-3 gap-4 my-6">
        <div class="bg-surface p-4 rounded border border-white/10">
            <h4 class="text-neonGreen font-bold">1. La Promesa Desmesurada</h4>
            <p class="text-xs text-gray-400">"Gana 2% diario fijo", "Sin riesgo", "Dinero garantizado". El mercado real fluctúa. Lo fijo y alto siempre es Ponzi.</p>
        </div>
        <div class="bg-surface p-4 rounded border border-white/10">
            <h4 class="text-neonGreen font-bold">2. La Urgencia Artificial</h4>
            <p class="text-xs text-gray-400">"Solo quedan 5 plazas", "El precio sube en 1 hora". Buscan que tu cerebro emocional anule al racional.</p>
        </div>
        <div class="bg-surface p-4 rounded border border-white/10">
            <h4 class="text-neonGreen font-bold">3. La Oscuridad Técnica</h4>
            <p class="text-xs text-gray-400">"Usamos un bot de arbitraje cuántico con IA". Palabras complejas para ocultar que no hay producto real.</p>
        </div>
      </div>

      <h3>Herramientas de Auditoría (Gratis)</h3>
      <p>Antes de meter un dólar en cualquier plataforma, pásala por este filtro:</p>

      <h4>1. Whois Domain Tools</h4>
      <p>Entra en <a href="https://who.is" target="_blank" class="text-neonGreen underline">who.is</a> y pon el dominio de la empresa.</p>
      <ul>
        <li><strong>Red Flag 🚩:</strong> El dominio fue creado hace 2 semanas pero dicen ser "Líderes mundiales desde 2010".</li>
        <li><strong>Red Flag 🚩:</strong> El registro expira en 1 año (las empresas serias compran dominios por 5-10 años).</li>
      </ul>

      <h4>2. Búsqueda Inversa de Imágenes</h4>
      <p>Muchos scams usan fotos de modelos de stock para sus "CEOs" o "Directores".</p>
      <ul>
        <li>Haz una captura de la foto del equipo.</li>
        <li>Súbela a <a href="https://tineye.com" target="_blank" class="text-neonGreen underline">TinEye</a> o Google Lens.</li>
        <li>Si el CEO aparece en una web de "Venta de fotos de ejecutivos", huye.</li>
      </ul>

      <h4>3. El Test de Liquidez (Para Tokens)</h4>
      <p>Si te venden un token nuevo que "va a subir x1000", búscalo en <strong>DexScreener</strong> o <strong>HoneyPot.is</strong>.</p>
      <ul>
        <li>Si el token tiene el "Sell Tax" al 99% o 100%, es un HoneyPot (puedes comprar pero no vender).</li>
        <li>Si la liquidez es menor a $10,000, es extremadamente peligroso.</li>
      </ul>

      <h3>Estafas de Tareas (Task Scams)</h3>
      <p>Están muy de moda en WhatsApp y Telegram. Te dicen: <em>"Somos de Shein/Amazon y pagamos por dar likes"</em>.</p>
      <p><strong>El Modus Operandi:</strong></p>
      <ol>
        <li>Te pagan realmente $2 o $5 el primer día para ganar tu confianza.</li>
        <li>Te meten en un "Grupo VIP" donde las tareas pagan $50.</li>
        <li>Para hacer esas tareas, te piden que "recargues saldo" o pagues una fianza.</li>
        <li>Una vez pagas la fianza, te bloquean y desaparecen.</li>
      </ol>
      <p class="bg-danger/10 p-3 rounded text-danger font-bold text-center">NUNCA PAGUES PARA TRABAJAR. Un trabajo real te paga a ti, no al revés.</p>
    `,
	},
	{
		ID:        "pro-1",
		Title:     "BLUEPRINT: De 0 a $3,000/mes con SEO Parásito (Paso a Paso)",
		Excerpt:   "Cómo usar la autoridad de LinkedIn y Medium para posicionar artículos de afiliado en Top 1 de Google en 48 horas.",
		Category:  "Estrategia PRO",
		ReadTime:  "15 min",
		Date:      "Exclusivo Miembros",
		IsPremium: true,
		ImageURL:  "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
		Content: `
      <h2>SEO Parásito</h2>
      <p>Consiste en publicar artículos de afiliado en dominios con autoridad prestada (LinkedIn Pulse, Medium) para posicionarse en Google en 48 horas en lugar de 6 meses.</p>
      <ol>
        <li>Encuentra keywords "best X for Y" con volumen bajo y compradores calientes.</li>
        <li>Escribe reviews comparativas en Medium con tu enlace de afiliado.</li>
        <li>Construye 3-5 backlinks baratos para empujar el artículo al Top 3.</li>
      </ol>
    `,
	},
	{
		ID:        "pro-2",
		Title:     "La Estrategia \"Whale\": Cómo cazar Airdrops de >$10,000",
		Excerpt:   "Análisis de billeteras de ballenas. Qué protocolos están usando ahora mismo para calificar al airdrop de LayerZero y Starknet.",
		Category:  "Crypto Alpha",
		ReadTime:  "12 min",
		Date:      "Actualización Semanal",
		IsPremium: true,
		ImageURL:  "https://images.unsplash.com/photo-1621504450168-b8c437532b3a?auto=format&fit=crop&q=80&w=800",
		Content: `
      <h2>Sigue a las Ballenas</h2>
      <p>Las wallets que recibieron airdrops de seis cifras repiten patrones de uso. Replicar sus rutas de interacción multiplica la probabilidad de calificar.</p>
      <ul>
        <li>Identifica las 50 wallets top del último airdrop grande.</li>
        <li>Extrae los protocolos que usan cada semana.</li>
        <li>Replica el patrón con capital reducido y constancia.</li>
      </ul>
    `,
	},
}
